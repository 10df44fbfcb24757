package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/store"
)

func newMotionCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "motion [auto|reduced|full]",
		Short:     "Show or persist the motion preference.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"auto", "reduced", "full"},
		Example: `
glyph-trail motion
glyph-trail motion reduced
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			prefs, err := store.Open(s.DataDir)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				mode, err := core.ParseMotionMode(args[0])
				if err != nil {
					return err
				}
				if err := prefs.SetMotionMode(mode); err != nil {
					return err
				}
			}

			mode, err := prefs.MotionMode()
			if err != nil {
				return err
			}
			label := color.New(color.Faint)
			value := color.New(color.Bold, color.FgCyan)
			out := cmd.OutOrStdout()
			_, _ = label.Fprint(out, "motion ")
			_, _ = value.Fprintln(out, mode)
			_, _ = label.Fprintf(out, "stored in %s\n", prefs.Dir())
			return nil
		},
	}
}
