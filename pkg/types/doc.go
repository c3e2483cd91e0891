// Package types defines the core types shared by the editing engine and its
// hosts: the EditSpec describing one "ensure this text" resource, the Ensure
// intent, and the FS interface the file gateway works against.
package types
