// Package userdata defines the on-disk layout of the petor home directory
// (~/.petor): the local template catalog under templates/ and the scratch
// area for remote clones under cache/clones/. All paths honor PETOR_*
// environment overrides so tests can run fully sandboxed.
package userdata
