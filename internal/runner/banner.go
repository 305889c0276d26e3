package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
  __            __      ___      __ 
 / /____ __ __ / /_ ___/ (_)__ _/ /_
/ __/ -_) \ // __// _  / (_-</ __/
\__/\__/_\_\ \__/ \_,_/_/___/\__/ 
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
