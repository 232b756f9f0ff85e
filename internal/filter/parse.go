package filter

import (
	"fmt"
	"strconv"
	"strings"

	"aihub/internal/model"
)

// ParseState builds a filter state from group=token[,token...] arguments.
// Format: meaning=nsfw,roleplay platform=web payment=mir features=no-vpn dead
// The bare word "dead" (or show-dead / show-dead=<bool>) includes inactive services.
// Token values are not checked here; see Unknown.
func ParseState(args []string) (model.FilterState, error) {
	var state model.FilterState
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		key, value, hasValue := strings.Cut(arg, "=")
		key = strings.ToLower(strings.TrimSpace(key))

		switch key {
		case "dead", "show-dead", "showdead":
			if !hasValue {
				state.ShowDead = true
				continue
			}
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return model.FilterState{}, fmt.Errorf("invalid %s value %q, use true or false", key, value)
			}
			state.ShowDead = b
			continue
		}

		if !hasValue {
			return model.FilterState{}, fmt.Errorf("invalid filter %q, use: <group>=<token>[,<token>]", arg)
		}
		tokens := splitTokens(value)

		switch Group(key) {
		case GroupMeaning:
			state.Meaning = append(state.Meaning, tokens...)
		case GroupFeatures:
			state.Features = append(state.Features, tokens...)
		case GroupPlatform:
			state.Platform = append(state.Platform, tokens...)
		case GroupPayment:
			state.Payment = append(state.Payment, tokens...)
		default:
			return model.FilterState{}, fmt.Errorf("unknown filter group %q, use: meaning, features, platform, payment", key)
		}
	}
	return state, nil
}

func splitTokens(value string) []string {
	var tokens []string
	for _, s := range strings.Split(value, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		tokens = append(tokens, s)
	}
	return tokens
}
