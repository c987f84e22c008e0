// Package config loads the optional HCL settings file of the command line
// tool.
//
// The file is decoded with gohcl against an evaluation context that exposes
// the process environment as `env`, so values such as
// `url = env.WARDLEY_PUBLISH_URL` resolve at load time. Every setting has a
// default; a missing default file is not an error. Command line flags are
// applied on top of the loaded values by the caller.
package config
