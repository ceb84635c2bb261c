package config

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}

	App struct {
		Env                        string
		Port                       string
		MaxRequests                int
		RateLimitWindowInSeconds   int
		RequestBodyLimitInMegabyte int
		ShutdownTimeoutInSeconds   int
	}

	MongoDB struct {
		URI    string
		DbName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
