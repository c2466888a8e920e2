package awsid

import "regexp"

// keyIDPattern matches a recognized resource-type prefix followed by the
// sixteen base32 characters of a modern twenty-character key ID.
var keyIDPattern = regexp.MustCompile(`\b(?:ABIA|ACCA|AGPA|AIDA|AIPA|AKIA|ANPA|ANVA|APKA|AROA|ASCA|ASIA)[A-Z2-7]{16}\b`)

// Find returns every candidate AWS key ID in text, in order of first
// appearance and without duplicates. It returns nil when none are
// present. Matches are candidates only: Find does not verify that a
// match decodes to a plausible account ID, use AccountID for that.
func Find(text string) []string {
	matches := keyIDPattern.FindAllString(text, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	keyIDs := matches[:0]
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		keyIDs = append(keyIDs, m)
	}
	return keyIDs
}
