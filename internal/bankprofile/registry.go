package bankprofile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/spendsync/internal/entity"
)

//go:embed profiles.json
var profilesJSON []byte

//go:embed profiles.schema.json
var profilesSchemaJSON string

// profileDoc mirrors the on-disk registry format before rule compilation.
type profileDoc struct {
	Profiles []struct {
		Name    string   `json:"name"`
		Senders []string `json:"senders"`
		Rules   *struct {
			Amount    string `json:"amount"`
			Balance   string `json:"balance"`
			Merchant  string `json:"merchant"`
			Reference string `json:"reference"`
		} `json:"rules"`
	} `json:"profiles"`
}

// Registry is the static sender-header -> institution table. It is loaded
// once at startup and never mutated afterwards, so lookups need no locking.
type Registry struct {
	profiles []entity.BankProfile
	logger   *slog.Logger
}

// Load parses and validates the embedded profile table and compiles any
// override rules. A schema violation or an uncompilable rule fails the load.
func Load(logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return load(profilesJSON, logger)
}

func load(raw []byte, logger *slog.Logger) (*Registry, error) {
	schema, err := jsonschema.CompileString("profiles.schema.json", profilesSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse profile registry: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("invalid profile registry: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var doc profileDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode profile registry: %w", err)
	}

	profiles := make([]entity.BankProfile, 0, len(doc.Profiles))
	for _, p := range doc.Profiles {
		profile := entity.BankProfile{
			Name:    p.Name,
			Senders: p.Senders,
		}
		if p.Rules != nil {
			rules := &entity.ExtractionRules{}
			if rules.Amount, err = compileRule(p.Name, "amount", p.Rules.Amount); err != nil {
				return nil, err
			}
			if rules.Balance, err = compileRule(p.Name, "balance", p.Rules.Balance); err != nil {
				return nil, err
			}
			if rules.Merchant, err = compileRule(p.Name, "merchant", p.Rules.Merchant); err != nil {
				return nil, err
			}
			if rules.Reference, err = compileRule(p.Name, "reference", p.Rules.Reference); err != nil {
				return nil, err
			}
			profile.Rules = rules
		}
		profiles = append(profiles, profile)
	}

	logger.Info("bank profile registry loaded", "profiles", len(profiles))
	return &Registry{profiles: profiles, logger: logger}, nil
}

func compileRule(profile, field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("profile %q: bad %s rule: %w", profile, field, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("profile %q: %s rule must capture the value in group 1", profile, field)
	}
	return re, nil
}

// Resolve returns the profile claiming the sender header, or nil when the
// sender is unrecognized. First profile in file order wins. Callers must
// still attempt generic extraction on a nil result.
func (r *Registry) Resolve(sender string) *entity.BankProfile {
	for i := range r.profiles {
		if r.profiles[i].HasSender(sender) {
			return &r.profiles[i]
		}
	}
	return nil
}

// Profiles returns the loaded table, for diagnostics.
func (r *Registry) Profiles() []entity.BankProfile {
	return r.profiles
}
