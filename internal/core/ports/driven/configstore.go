package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a float configuration value.
	// Returns 0 if key doesn't exist or isn't a number.
	GetFloat(key string) float64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigOpenAIAPIKey is the OpenAI API key.
	ConfigOpenAIAPIKey = "openai.api_key"

	// ConfigOpenAIBaseURL overrides the OpenAI API base URL.
	ConfigOpenAIBaseURL = "openai.base_url"

	// ConfigEmbeddingModel selects the embedding model. Must match the
	// model the vector indexes were built with.
	ConfigEmbeddingModel = "openai.embedding_model"

	// ConfigPineconeAPIKey is the Pinecone API key.
	ConfigPineconeAPIKey = "pinecone.api_key"

	// ConfigPineconeConstitutionHost is the constitution index endpoint.
	ConfigPineconeConstitutionHost = "pinecone.constitution_host"

	// ConfigPineconeStatutesHost is the statutes index endpoint.
	ConfigPineconeStatutesHost = "pinecone.statutes_host"

	// ConfigDataDir overrides the SQLite data directory.
	ConfigDataDir = "storage.data_dir"

	// ConfigDefaultModel overrides the default generative model.
	ConfigDefaultModel = "ask.default_model"
)
