// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package configuration

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	EnvPrefix  = "flightsurety"
	ConfigType = "yaml"
)

type ConfigStruct interface {
	GetConfig() interface{}
}

type Params struct {
	// Filled with defaults, overwritten by the file and then by the environment.
	ConfigStruct ConfigStruct
	EnvPrefix    string
	// Command line arguments without the program name.
	Args []string
	// For spf13/pflags compatibility
	PFlags     *flag.FlagSet
	ViperHooks []mapstructure.DecodeHookFunc
}

// Load reads the file named by --config on top of the defaults held by
// params.ConfigStruct. Environment variables like FLIGHTSURETY_DB_URL win over both.
func Load(params Params) (ConfigStruct, error) {
	if params.EnvPrefix == "" {
		return nil, errors.New("EnvPrefix should be defined")
	}
	if params.ConfigStruct == nil {
		return nil, errors.New("ConfigStruct should be defined")
	}
	fs := flag.NewFlagSet(params.EnvPrefix, flag.ContinueOnError)
	if params.PFlags != nil {
		fs.AddFlagSet(params.PFlags)
	}
	configPath := fs.String("config", "", "path to config")
	if err := fs.Parse(params.Args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}
	return load(params, *configPath)
}

func load(params Params, path string) (ConfigStruct, error) {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(params.EnvPrefix)

	defaults, err := yaml.Marshal(params.ConfigStruct.GetConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal default config")
	}
	v.SetConfigType(ConfigType)
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, "failed to load default config")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to load config")
		}
	}

	actual := params.ConfigStruct.GetConfig()
	hooks := append(params.ViperHooks, mapstructure.StringToTimeDurationHookFunc(), mapstructure.StringToSliceHookFunc(","))
	err = v.UnmarshalExact(actual, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(hooks...)))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config file into configuration structure")
	}
	return params.ConfigStruct, nil
}

func PrintWorkingDir(log logrus.FieldLogger) {
	wd, _ := os.Getwd()
	log.Infof("Working dir: %s", wd)
}

func PrintConfig(log logrus.FieldLogger, c ConfigStruct) {
	out, err := yaml.Marshal(cleanSecrets(c))
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to marshal config structure"))
		return
	}
	log.Infof("Loaded configuration: \n %s \n", string(out))
}

func cleanSecrets(c ConfigStruct) interface{} {
	switch cfg := c.(type) {
	case *Configuration:
		cc := *cfg
		cc.DB.URL = replacePassword(cc.DB.URL)
		return &cc
	case *Migrate:
		cc := *cfg
		cc.DB.URL = replacePassword(cc.DB.URL)
		return &cc
	}
	return c.GetConfig()
}

func replacePassword(url string) string {
	re := regexp.MustCompile(`^(?P<start>.*)(:(?P<pass>[^@\/:?]+)@)(?P<end>.*)$`)
	var result []byte
	if re.MatchString(url) {
		for _, submatches := range re.FindAllStringSubmatchIndex(url, -1) {
			result = re.ExpandString(result, `$start:<masked>@$end`, url, submatches)
		}
		return string(result)
	}
	return url
}
