package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/newtype0092/uploadcare-go"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

var (
	Version = "DEV"

	debug     bool
	publicKey string
	secretKey string
	store     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "ucup",
	Short:   "Upload files to Uploadcare from the command line",
	Long:    "ucup uploads files to Uploadcare, picking the single-request or multipart protocol from the file size, and manages uploaded files over the REST API",
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "debug mode")
	flags.StringVarP(&publicKey, "public-key", "k", "", "project public key (env UCUP_PUBLIC_KEY)")
	flags.StringVar(&secretKey, "secret-key", "", "project secret key, needed for REST commands (env UCUP_SECRET_KEY)")
	flags.StringVar(&store, "store", string(uctypes.StoreAuto), "storage directive: auto, 1 or 0")
}

// initConfig reads in environment variables that match the global flags.
func initConfig() {
	viper.SetEnvPrefix("ucup")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cobra.CheckErr(viper.BindPFlag("public-key", rootCmd.PersistentFlags().Lookup("public-key")))
	cobra.CheckErr(viper.BindPFlag("secret-key", rootCmd.PersistentFlags().Lookup("secret-key")))

	publicKey = viper.GetString("public-key")
	secretKey = viper.GetString("secret-key")
}

// newClient builds an API client from the global flags.
func newClient() (*ucare.Client, error) {
	opts := []uctypes.Option{
		ucare.WithDefaultStore(uctypes.StoreDirective(store)),
	}
	if secretKey != "" {
		opts = append(opts, ucare.WithSecretKey(secretKey))
	}
	return ucare.New(publicKey, opts...)
}
