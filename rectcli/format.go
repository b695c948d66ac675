package rectcli

import (
	"fmt"
	"strings"
)

type outputFormat string

const TEXT outputFormat = "text"
const JSON outputFormat = "json"

var SUPPORTED_FORMATS = []outputFormat{TEXT, JSON}

func getOutputFormat(formatFlag string) (outputFormat, error) {
	format := outputFormat(strings.ToLower(strings.TrimSpace(formatFlag)))
	for _, f := range SUPPORTED_FORMATS {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("%s is not a supported format. Supported formats are: %s", formatFlag, SUPPORTED_FORMATS)
}
