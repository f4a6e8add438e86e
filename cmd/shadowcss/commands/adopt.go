package commands

import (
	"fmt"
	"os"

	"github.com/npillmayer/shadowcss/adopt"
	"github.com/npillmayer/shadowcss/dom"
	"github.com/npillmayer/shadowcss/dom/domdbg"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/shadowcss/internal/rulefile"
	"github.com/spf13/cobra"
)

func adoptCmd() *cobra.Command {
	var (
		page     string
		selector string
		rules    string
		origin   string
		cssDir   string
		light    bool
		snapshot bool
	)
	cmd := &cobra.Command{
		Use:   "adopt",
		Short: "Adopt rules into an element of an HTML page and print the adopted stylesheets",
		Long: `Adopt rules into an element of an HTML page and print the adopted stylesheets.

The rules replace whatever has been adopted by the target before. With
--snapshot, the page's own stylesheets are adopted first and every rule
gets a stylesheet of its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleset, err := rulefile.Load(rules)
			if err != nil {
				return err
			}
			f, err := os.Open(page)
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := dom.Parse(f)
			if err != nil {
				return err
			}
			opts := []douceuradapter.Option{douceuradapter.Origin(origin)}
			if cssDir != "" {
				opts = append(opts, douceuradapter.Files(os.DirFS(cssDir)))
			}
			factory := cssom.NewFactory(douceuradapter.NewPlatform(doc.HTML(), opts...))
			host, err := doc.QuerySelector(selector)
			if err != nil {
				return err
			}
			if !light {
				host.AttachShadow()
			}
			if snapshot {
				snap := factory.FromDocument()
				for _, skipped := range snap.Skipped() {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped stylesheet: %v\n", skipped)
				}
				err = adopt.StyleSheets(factory, host, snap.Sheets(),
					adopt.WithRules(ruleset...), adopt.InShadow(!light))
			} else {
				err = adopt.StyleSheet(factory, host, ruleset, adopt.InShadow(!light))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), domdbg.String(doc))
			return nil
		},
	}
	cmd.Flags().StringVar(&page, "html", "", "HTML page to load")
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "selector of the host element")
	cmd.Flags().StringVarP(&rules, "rules", "r", "", "rule file (YAML or JSON)")
	cmd.Flags().StringVar(&origin, "origin", "", "origin of the page, e.g. https://example.com")
	cmd.Flags().StringVar(&cssDir, "css-dir", "", "directory to load same-origin linked stylesheets from")
	cmd.Flags().BoolVar(&light, "light", false, "adopt into the host's own list instead of its shadow root")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "adopt the page's stylesheets before the rules")
	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("selector")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}
