package constants

// Configuration Files
const (
	ConfigFileName = "boards.config.json"
)

// Environment Variables
const (
	EnvDebug           = "BOARDS_DEBUG"
	EnvAdminPassword   = "ADMIN_PASSWORD"
	EnvGitHubToken     = "GITHUB_TOKEN"
	EnvSheetID         = "BOARDS_SHEET_ID"
	EnvSheetGID        = "BOARDS_SHEET_GID"
	EnvRepo            = "BOARDS_REPO"
	EnvPendingPath     = "BOARDS_PENDING_PATH"
	EnvBranch          = "BOARDS_BRANCH"
	EnvSecretsDriver   = "BOARDS_SECRETS_DRIVER"
	EnvSecretsRegion   = "BOARDS_SECRETS_REGION"
	EnvSecretsPrefix   = "BOARDS_SECRETS_PREFIX"
	EnvTracingExporter = "BOARDS_TRACING_EXPORTER"
	EnvBlobDriver      = "BOARDS_BLOB_DRIVER"
	EnvBlobBucket      = "BOARDS_BLOB_BUCKET"
	EnvBlobRegion      = "BOARDS_BLOB_REGION"
	EnvSheetURL        = "BOARDS_SHEET_URL_TEMPLATE"
	EnvContentsURL     = "BOARDS_CONTENTS_URL_TEMPLATE"
)

// Secrets Drivers
const (
	SecretsDriverEnv = "env"
	SecretsDriverAWS = "aws-sm"
)

// Blob Drivers
const (
	BlobDriverFilesystem = "filesystem"
	BlobDriverS3         = "s3"
)

// Tracing Exporters
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// JSONIndent is used for pretty printed CLI output.
const JSONIndent = "  "
