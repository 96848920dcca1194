package ucare

import (
	"context"
	"net/http"

	"github.com/newtype0092/uploadcare-go/uctypes"
)

// ProjectInfo retrieves the project resource: name, public key, and
// collaborators.
func (c *Client) ProjectInfo(ctx context.Context) (*uctypes.Project, error) {
	var project uctypes.Project
	if err := c.rest(ctx, "projectInfo", http.MethodGet, "project/", nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
