package configuration

const AppName = "clinic-feedback"

// JWT audience constants for token type separation.
const (
	AudienceAccessToken = "app:*"
	AudienceLinkToken   = "auth:link"
)

// LinkTokenExpiry is the messenger deep-link token lifetime in minutes.
const LinkTokenExpiry = 15

// Messenger identifiers used by the account-linking endpoints.
const (
	MessengerTelegram = "telegram"
	MessengerMax      = "max"
)

var ArrayConfigFields = []string{
	"app.allowed_origins",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}

// AuthRule describes whether a path requires a bearer token.
type AuthRule struct {
	Method      string
	RequireAuth bool
}

// AuthPrefixRule matches any path under Path.
type AuthPrefixRule struct {
	Path        string
	Method      string
	RequireAuth bool
}

var AuthRuleExactMatchPath = map[string][]AuthRule{
	"/api/login": {{Method: "POST", RequireAuth: false}},
}

var AuthRulePrefixMatchPath = []AuthPrefixRule{
	{Path: "/api/public/", Method: "*", RequireAuth: false},
}
