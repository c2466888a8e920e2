package awsid

import "strings"

// prefixLen is the length of the resource-type prefix on every modern
// AWS unique identifier.
const prefixLen = 4

// resourceTypes maps the four-character prefixes of modern AWS unique
// identifiers to their resource types. Older identifiers beginning with
// "I" or "J" use a different encoding and are not represented.
var resourceTypes = map[string]string{
	"ABIA": "AWS STS service bearer token",
	"ACCA": "Context-specific credential",
	"AGPA": "User group",
	"AIDA": "IAM user",
	"AIPA": "Amazon EC2 instance profile",
	"AKIA": "Access key",
	"ANPA": "Managed policy",
	"ANVA": "Version in a managed policy",
	"APKA": "Public key",
	"AROA": "Role",
	"ASCA": "Certificate",
	"ASIA": "Temporary (AWS STS) access key IDs",
}

// ResourceType returns the resource type identified by the key ID prefix.
// The lookup is case-insensitive and ignores surrounding whitespace. The
// second return value reports whether the prefix is recognized; an
// unknown or too-short key ID is not an error, just absent.
func ResourceType(keyID string) (string, bool) {
	keyID = strings.TrimSpace(keyID)
	if len(keyID) < prefixLen {
		return "", false
	}
	label, ok := resourceTypes[strings.ToUpper(keyID[:prefixLen])]
	return label, ok
}
