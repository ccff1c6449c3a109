package config

import "fmt"

// Validate checks the settings that would make the server unusable
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 0 and 65535, got %d", c.Port)
	}
	if c.GrowthTickInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", EnvGrowthTickInterval, c.GrowthTickInterval)
	}
	if c.ProximityTickInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", EnvProximityTickInterval, c.ProximityTickInterval)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	return nil
}

// ValidateWithWarnings validates and returns warnings for settings that work but look wrong
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.ProximityTickInterval < MinTickInterval {
		warnings = append(warnings, fmt.Sprintf("%s=%s is below %s and will keep a CPU busy", EnvProximityTickInterval, c.ProximityTickInterval, MinTickInterval))
	}
	if c.GrowthTickInterval < MinTickInterval {
		warnings = append(warnings, fmt.Sprintf("%s=%s is below %s and will keep a CPU busy", EnvGrowthTickInterval, c.GrowthTickInterval, MinTickInterval))
	}
	if c.APIKey == "" && c.Environment != EnvironmentDev {
		warnings = append(warnings, fmt.Sprintf("%s is empty: farm commands are open to anyone who can reach %s", EnvAPIKey, c.Addr()))
	}
	if !c.BareHandClearsPlant {
		warnings = append(warnings, fmt.Sprintf("%s=false: harvested tiles stay occupied until patched through the API", EnvBareHandClearsPlant))
	}

	return warnings, nil
}
