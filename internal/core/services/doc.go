// Package services implements the driving ports on top of the astro
// core and the driven ports. Services hold no mutable state beyond
// their injected collaborators.
package services
