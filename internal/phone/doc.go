// Package phone is a sample application of the statemachine package: a desk
// phone that can be taken off the hook, dial, connect, hold, mute and hang up.
//
// The same machine can be built in code (New) or from the embedded YAML
// definition (NewFromDefinition).
package phone
