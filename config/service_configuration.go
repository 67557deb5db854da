/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads service configurations declaring human readable sizes.
//
// Configuration structures can declare size.Size and multiple.Multiple fields
// which are decoded from strings such as "5 GiB" wherever the value comes from:
// environment variables, `.env` files, configuration files or flags.
package config

import (
	"encoding"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/humansize/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	mapstructureTag    = "mapstructure"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "spf", the env registry will look for env variables that start with "SPF_".
// make sure that the tags on the fields of configurationToSet are properly set using only `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained for every key it knows about. Fields of configurationToSet
// no source provides a value for are set to the value found in defaultConfiguration.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if configurationToSet == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration to set")
		return
	}
	err = applyDefaults(configurationToSet, defaultConfiguration)
	if err != nil {
		return
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	err = bindEnvironment(viperSession, reflect.TypeOf(configurationToSet), "")
	if err != nil {
		return
	}

	err = viperSession.Unmarshal(configurationToSet, viper.DecodeHook(DecodeHook()))
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlag binds a pflag to a configuration key. Size flags (see size.FlagVar) are decoded as any other size entry.
func BindFlag(viperSession *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing flag for key %v", key)
	}
	return viperSession.BindPFlag(strings.ToLower(key), flag)
}

// DecodeHook returns the decode hook used when decoding configuration entries.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		SizeHookFunc(),
		MultipleHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

func applyDefaults(configurationToSet, defaultConfiguration IServiceConfiguration) error {
	if defaultConfiguration == nil {
		return nil
	}
	target := reflect.ValueOf(configurationToSet)
	defaults := reflect.ValueOf(defaultConfiguration)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return commonerrors.Newf(commonerrors.ErrInvalid, "configuration to set must be a non-nil pointer, got %T", configurationToSet)
	}
	defaults = reflect.Indirect(defaults)
	if !defaults.IsValid() {
		return nil
	}
	if defaults.Type() != target.Elem().Type() {
		return commonerrors.Newf(commonerrors.ErrInvalid, "default configuration of type %T does not match %T", defaultConfiguration, configurationToSet)
	}
	target.Elem().Set(defaults)
	return nil
}

// bindEnvironment makes viper aware of every key of the configuration structure so that
// environment variables are considered even when no other source defines the key.
func bindEnvironment(viperSession *viper.Viper, t reflect.Type, prefix string) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, squash := fieldKey(field)
		if name == "-" {
			continue
		}
		key := prefix
		if !squash {
			key = joinKey(prefix, name)
		}
		if isNested(field.Type) {
			if err := bindEnvironment(viperSession, field.Type, key); err != nil {
				return err
			}
			continue
		}
		if err := viperSession.BindEnv(key); err != nil {
			return err
		}
	}
	return nil
}

func fieldKey(field reflect.StructField) (name string, squash bool) {
	name = field.Name
	tag, found := field.Tag.Lookup(mapstructureTag)
	if !found {
		return strings.ToLower(name), field.Anonymous
	}
	elems := strings.Split(tag, ",")
	if elems[0] != "" {
		name = elems[0]
	}
	for _, option := range elems[1:] {
		if option == "squash" {
			squash = true
		}
	}
	return strings.ToLower(name), squash
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + configKeySeparator + name
}

// Structures decoded from text (e.g. sizes) are leaves, not nested configurations.
func isNested(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return !reflect.PointerTo(t).Implements(textUnmarshalerType)
}
