package manifest

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// FeedConfigFileName is the name of the generated credential file.
const FeedConfigFileName = "nuget.config"

// FeedConfig declares a single package source and its credentials.
type FeedConfig struct {
	Key           string
	URL           string
	Username      string
	Password      string
	AllowInsecure bool
}

// Validate ensures the source can be declared.
func (c FeedConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Key) == "" {
		missing = append(missing, "source name")
	}
	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "source url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("feed config: missing %s", strings.Join(missing, " and "))
	}
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("feed config: a username is required for credentials")
	}
	return nil
}

// RenderFeedConfig renders a nuget.config declaring c as the only source.
func RenderFeedConfig(c FeedConfig) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	insecure := ""
	if c.AllowInsecure {
		insecure = ` allowInsecureConnections="true"`
	}
	element := encodeElementName(c.Key)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString("<configuration>\n")
	sb.WriteString("  <packageSources>\n")
	sb.WriteString("    <clear />\n")
	sb.WriteString(`    <add key="` + escape(c.Key) + `" value="` + escape(c.URL) + `"` + insecure + " />\n")
	sb.WriteString("  </packageSources>\n")
	sb.WriteString("  <packageSourceCredentials>\n")
	sb.WriteString("    <" + element + ">\n")
	sb.WriteString(`      <add key="Username" value="` + escape(c.Username) + `" />` + "\n")
	sb.WriteString(`      <add key="ClearTextPassword" value="` + escape(c.Password) + `" />` + "\n")
	sb.WriteString("    </" + element + ">\n")
	sb.WriteString("  </packageSourceCredentials>\n")
	sb.WriteString("</configuration>\n")

	return sb.String(), nil
}

// encodeElementName turns a source key into an XML element name the way
// NuGet does: characters that may not appear in a name become _xHHHH_.
func encodeElementName(key string) string {
	var sb strings.Builder
	for i, r := range key {
		valid := r == '_' || unicode.IsLetter(r)
		if i > 0 {
			valid = valid || unicode.IsDigit(r) || r == '-' || r == '.'
		}
		if valid {
			sb.WriteRune(r)
			continue
		}
		fmt.Fprintf(&sb, "_x%04X_", r)
	}
	return sb.String()
}
