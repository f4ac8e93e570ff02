package version

import (
	"fmt"

	"github.com/Layr-Labs/hhconfig/internal/version"
	"github.com/Layr-Labs/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// VersionCommand defines the "version" command
var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the version of hhconfig",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return VersionRun(cCtx)
	},
}

func VersionRun(cCtx *cli.Context) error {
	_, err := fmt.Fprintf(cCtx.App.Writer, "Version: %s\nCommit: %s\n", version.GetVersion(), version.GetCommit())
	return err
}
