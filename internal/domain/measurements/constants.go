package measurements

// Tools that produce measurements
const (
	ToolAES          = "aes"
	ToolRSA          = "rsa"
	ToolSHA256       = "sha256"
	ToolSubstitution = "substitution"
)

// Operations timed by the tools
const (
	OperationGenerateKey = "generate-key"
	OperationEncrypt     = "encrypt"
	OperationDecrypt     = "decrypt"
	OperationSign        = "sign"
	OperationVerify      = "verify"
	OperationHash        = "hash"
	OperationAnalyze     = "analyze"
)

// Outcomes recorded for an operation
const (
	OutcomeSuccess = "success"
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)
