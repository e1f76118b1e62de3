package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitrine-dev/vitrine/pkg/display"
	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// newKindsCmd creates the kinds command, which lists the known kinds and
// any renderers registered for concrete types.
func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List known kinds and registered renderers",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Known kinds"))
			for _, kind := range mime.Known {
				printKeyValue("."+kind.Ext(), string(kind))
			}

			entries := display.Default().Entries()
			if len(entries) == 0 {
				return nil
			}
			fmt.Println()
			fmt.Println(StyleTitle.Render("Registered renderers"))
			for _, e := range entries {
				printKeyValue(e.Type.String(), string(e.Kind))
			}
			return nil
		},
	}
}
