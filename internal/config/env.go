package config

import (
	"os"
	"strconv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "COURTBOUNCE_"

func (c *Config) applyEnv() {
	c.Window.Width = getEnvInt("WIDTH", c.Window.Width)
	c.Window.Height = getEnvInt("HEIGHT", c.Window.Height)
	c.Window.Title = getEnv("TITLE", c.Window.Title)
	c.Window.TargetFPS = getEnvInt("TARGET_FPS", c.Window.TargetFPS)
	c.Window.MSAA = getEnvBool("MSAA", c.Window.MSAA)

	c.Simulation.FixedStep = getEnvFloat("FIXED_STEP", c.Simulation.FixedStep)
	c.Simulation.MaxTicks = getEnvInt("MAX_TICKS", c.Simulation.MaxTicks)

	c.Contact.Enabled = getEnvBool("CONTACT_ENABLED", c.Contact.Enabled)
	c.Contact.Friction = getEnvFloat("FRICTION", c.Contact.Friction)
	c.Contact.Restitution = getEnvFloat("RESTITUTION", c.Contact.Restitution)

	c.HUD = getEnvBool("HUD", c.HUD)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
