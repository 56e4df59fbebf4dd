// Package templates defines the ordered registry of files pyboot produces.
//
// Each Descriptor combines the declarative settings from configuration
// (file name, output path, force, global default locations) with the parts
// only the binary can supply: the embedded fallback body and the content
// transform that adapts it to the project.
package templates
