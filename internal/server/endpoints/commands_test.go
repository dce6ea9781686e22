package endpoints

import "testing"

// The root command registers a persistent -o/--output flag for the CLI
// output format. Endpoint commands must not register a local flag with
// the same name or shorthand, or the format becomes unsettable there.
func TestCommandsDoNotShadowOutputFlag(t *testing.T) {
	serverURL := func() string { return "http://localhost:8080" }

	for _, ep := range All() {
		cmd := ep.Command(serverURL)
		if cmd == nil {
			continue
		}
		if f := cmd.Flags().Lookup("output"); f != nil {
			t.Errorf("%s registers a local --output flag", cmd.Name())
		}
		if f := cmd.Flags().ShorthandLookup("o"); f != nil {
			t.Errorf("%s registers a local -o shorthand (--%s)", cmd.Name(), f.Name)
		}
	}
}
