package textdist

import (
	"fmt"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// DefaultTemplate renders one result per line
const DefaultTemplate = "{{metric}}\t{{value}}"

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// ValidateTemplate checks that all placeholders of template are well formed
func ValidateTemplate(template string) error {
	_, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose)
	return err
}
