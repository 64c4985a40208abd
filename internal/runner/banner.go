package runner

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/pingx/pkg/version"
)

var banner = `
    ____  _            _  __
   / __ \(_)___  ____ | |/ /
  / /_/ / / __ \/ __ ` + "`" + `/   /
 / ____/ / / / / /_/ /   |
/_/   /_/_/ /_/\__, /_/|_|
              /____/
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s%s\n", banner, version.GetVersion())
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
