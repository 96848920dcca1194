package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/newtype0092/uploadcare-go"
	"github.com/newtype0092/uploadcare-go/internal/operations/upload"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

var (
	uploadFilename    string
	uploadContentType string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Upload one or more files",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := getLogger("upload", debug)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		for _, path := range args {
			if err := uploadOne(cmd, client, log, path); err != nil {
				return fmt.Errorf("uploading %s: %w", path, err)
			}
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFilename, "filename", "", "filename to register instead of the local name")
	uploadCmd.Flags().StringVar(&uploadContentType, "content-type", "", "content type to register instead of the detected one")
	rootCmd.AddCommand(uploadCmd)
}

func uploadOne(cmd *cobra.Command, client *ucare.Client, log logr.Logger, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()

	strategy := upload.DecideStrategy(size)
	log.V(1).Info("upload planned",
		"file", path,
		"size", size,
		"strategy", strategy.String(),
		"parts", len(upload.PlanParts(size)),
	)

	bar := progressbar.DefaultBytes(size, fmt.Sprintf("Uploading file: %s", info.Name()))
	source := &progressSource{file: file, bar: bar}

	opts := []uctypes.UploadOption{ucare.WithFilename(info.Name())}
	if uploadFilename != "" {
		opts = append(opts, ucare.WithFilename(uploadFilename))
	}
	if uploadContentType != "" {
		opts = append(opts, ucare.WithContentType(uploadContentType))
	}

	result, err := client.Upload(cmd.Context(), source, opts...)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	log.Info("upload complete", "file", path, "uuid", result.FileID)
	fmt.Fprintln(cmd.OutOrStdout(), result.FileID)
	return nil
}

// progressSource feeds reads through a progress bar. Rewinds reset the bar
// so the size probe and content sniff before the transfer do not count.
type progressSource struct {
	file *os.File
	bar  *progressbar.ProgressBar
}

func (p *progressSource) Read(buf []byte) (int, error) {
	n, err := p.file.Read(buf)
	_ = p.bar.Add(n)
	return n, err
}

func (p *progressSource) Seek(offset int64, whence int) (int64, error) {
	pos, err := p.file.Seek(offset, whence)
	if err == nil && offset == 0 && whence == io.SeekStart {
		_ = p.bar.Set(0)
	}
	return pos, err
}

func (p *progressSource) Close() error {
	return p.file.Close()
}
