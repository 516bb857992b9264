// Package config loads and validates the configuration of a CPI process.
//
// Values are read with Viper from a YAML file, then from a .env file and the
// process environment. Environment variables address nested keys with
// underscores (LOGGING_LEVEL sets logging.level); WithEnvPrefix limits
// binding to one prefix (CPI_LOGGING_LEVEL).
//
// # Usage
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("openstack-cpi", &cfg, config.WithEnvPrefix("CPI")); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
