// Package generator locates the uniffi-bindgen-react-native binding
// generator and builds its command lines.
//
// The generator can be reached two ways: through the package runner
// ("npx uniffi-bindgen-react-native"), which is preferred, or as a directly
// installed binary. Probing never fails; an unreachable generator is simply
// reported as unavailable.
package generator
