package settings

// LogLevelEntry is one row of the severity table.
type LogLevelEntry struct {
	Name     string `json:"name" toon:"name"`
	Severity int    `json:"severity" toon:"severity"`
}

// LogLevelListResponse lists the severity table in ascending order.
type LogLevelListResponse struct {
	Levels []LogLevelEntry `json:"levels" toon:"levels"`
	Count  int             `json:"count" toon:"count"`
}

// EnvironmentResponse describes the deployment mode.
type EnvironmentResponse struct {
	Environment string `json:"environment"`
	Production  bool   `json:"production"`
}

// ConfigResponse is the combined view returned by GET /api/v1/config.
type ConfigResponse struct {
	Environment string         `json:"environment"`
	LogLevel    string         `json:"log_level"`
	LogLevels   map[string]int `json:"log_levels"`
}
