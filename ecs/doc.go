// Package ecs provides Donburi adapters for glide.
//
// Publish a Frame event once per host frame and process events; attached
// schedulers and SmoothPosition components advance by its Elapsed seconds.
package ecs
