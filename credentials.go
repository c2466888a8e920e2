package awsid

import "github.com/aws/aws-sdk-go-v2/aws"

// FromCredentials resolves the account ID for a set of SDK credentials.
// When the credential provider already populated creds.AccountID that
// value is returned untouched; otherwise the account ID is decoded from
// the access key ID via AccountID.
func FromCredentials(creds aws.Credentials) (string, error) {
	if creds.AccountID != "" {
		return creds.AccountID, nil
	}
	return AccountID(creds.AccessKeyID)
}
