package config

import (
	stderrors "errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/logging"
)

// Documented defaults for the optional threshold fields. Trigger lists
// default to empty.
var defaultThresholds = map[string]interface{}{
	"swipe_distance":    uint32(100),
	"shear_distance":    uint32(100),
	"pinch_distance":    1.4,
	"rotation_distance": 60.0,
}

// optionalFields is every field of the document that may be omitted, in
// declaration order, for reporting applied defaults.
var optionalFields = []string{
	"swipe_distance",
	"shear_distance",
	"pinch_distance",
	"rotation_distance",
	"global_triggers",
	"x11_triggers",
	"wayland_triggers",
}

// Load reads and decodes the configuration document at path.
//
// Failures are of two kinds only: CONFIG_READ when the path cannot be read
// and CONFIG_DECODE when the content does not conform to the document
// schema. Decoding is all-or-nothing; no partially populated Document is
// ever returned. The second return value lists the optional fields that were
// absent and received their documented default; the caller decides whether
// to surface them.
func Load(path string) (*Document, []AppliedDefault, error) {
	logger := logging.GetLogger("config")
	logger.Trace().Str("path", path).Msg("Reading configuration")

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error reading config")
		return nil, nil, errors.Wrapf(err, errors.ErrConfigRead, "failed to read config file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultThresholds, "."), nil); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrInternal, "failed to load threshold defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: content}, toml.Parser()); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error decoding config")
		return nil, nil, errors.Wrapf(err, errors.ErrConfigDecode, "failed to decode config file %s", path)
	}

	doc, err := decodeDocument(k)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error decoding config")
		return nil, nil, err
	}

	return doc, appliedDefaults(content), nil
}

// appliedDefaults reports which optional fields the file itself omitted.
func appliedDefaults(content []byte) []AppliedDefault {
	fileOnly := koanf.New(".")
	// The content already parsed once during Load; a failure here is
	// unreachable.
	if err := fileOnly.Load(&rawBytesProvider{bytes: content}, toml.Parser()); err != nil {
		return nil
	}

	var applied []AppliedDefault
	for _, field := range optionalFields {
		if !fileOnly.Exists(field) {
			applied = append(applied, AppliedDefault{Field: field})
		}
	}
	return applied
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}
