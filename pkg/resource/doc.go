// Package resource is the host side of the edit engine. It turns attribute
// bags into edit specs and drives an editor through the existence check
// and, when the desired state does not hold yet, the matching mutation.
package resource
