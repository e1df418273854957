package resource

import (
	"context"
	"strings"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// SaveConfig copies the running config to the given path, defaulting to
// startup-config. Any other destination must carry a filesystem prefix
// ("bootflash:backup.cfg"). The copy command only reports progress as text.
func SaveConfig(ctx context.Context, c reconcile.Client, path string) error {
	if path == "" {
		path = "startup-config"
	}
	if path != "startup-config" && !strings.Contains(path, ":") {
		return util.NewValidationError(
			"path requires a filesystem prefix, e.g. bootflash:backup.cfg")
	}

	out, err := c.ShowText(ctx, "copy running-config "+path)
	if err != nil {
		return err
	}

	lower := strings.ToLower(out)
	if strings.Contains(out, "100%") || strings.Contains(lower, "copy complete") {
		return nil
	}
	return util.NewCommandError("copy running-config "+path, "", out)
}
