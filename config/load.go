package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"guestpass/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

// EnvConfigPath names a config file that bypasses the directory search.
const EnvConfigPath = "GUESTPASS_CONFIG"

// load reads <name>.yaml, overlays the process environment and decodes into out.
func load(out any, name string, dirs ...string) error {
	path, err := locate(name, dirs)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	// RATELIMIT_REDIS_ADDR overrides rateLimit.redis.addr
	known := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if key == EnvConfigPath {
				return "", nil
			}

			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return errors.Wrap(err, "load environment overrides")
	}

	err = k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})

	return errors.Wrapf(err, "decode %s", path)
}

// locate prefers GUESTPASS_CONFIG, then <name>.yaml in the working directory
// and each dir relative to it.
func locate(name string, dirs []string) (string, error) {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", EnvConfigPath, explicit)
		}

		return explicit, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := []string{filepath.Join(pwd, name+".yaml")}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(pwd, dir, name+".yaml"))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found (searched %s)", name, strings.Join(candidates, ", "))
}

// canonicalizeEnvKey maps an upper snake env name onto the camelCase path
// already present in the yaml, falling back to lower dotted segments.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var path []string
	node := known

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := matchKey(node, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any, bool) {
	want := alnumLower(segment)
	for key, value := range node {
		if alnumLower(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func alnumLower(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until an index is missing its host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
