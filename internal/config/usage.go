package config

import (
	"flag"
	"fmt"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/ui"
)

// setCustomUsage installs a themed usage function on fs.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if ui.ColorDisabled(false) {
			t = ui.NoColorTheme
		}
		out := fs.Output()

		fmt.Fprintf(out, "\n%sArmstrong Number Checker%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Checks a number and benchmarks the iterative and recursive checkers.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			sig := "-" + f.Name
			if name != "" {
				sig += " " + name
			}
			fmt.Fprintf(out, "  %s%-22s%s %s", t.Primary, sig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\n%sReference sets:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %-9s smallest Armstrong number of each length 3..10 (default).\n", armstrong.ReferenceCanonical)
		fmt.Fprintf(out, "  %-9s the table of the original demo page: 153 ... 4210818.\n", armstrong.ReferenceClassic)
		fmt.Fprintf(out, "  The default departs from the original page; pass --reference %s to reproduce it.\n", armstrong.ReferenceClassic)
		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Most flags can also be set through %s<NAME>, e.g. %sREPEAT=5000.\n\n",
			t.Warning, t.Reset, EnvPrefix, EnvPrefix)
	}
}
