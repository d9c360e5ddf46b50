// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command defines the Request/Response pairs for the command
// surface, one pair per method, and a Dispatcher mapping command name
// to handler. Every method gets its own named types even where a bare
// value would do, for regularity across the surface.
package command

import "ueinspect/query"

type ListProcessesRequest struct{}

type ListProcessesResponse struct {
	Processes []ProcessInfo
}

type ProcessInfo struct {
	PID  uint32
	Name string
}

type AttachRequest struct {
	PID  uint32
	Name string
}

type AttachResponse struct {
	Confirmation string
}

type GetVersionRequest struct{}

type GetVersionResponse struct {
	Version string
}

type ResolveNamePoolRequest struct{}
type ResolveObjectArrayRequest struct{}
type ResolveWorldRequest struct{}

type ResolveAnchorResponse struct {
	Address uint64
}

type ShowAnchorsRequest struct{}

type ShowAnchorsResponse struct {
	Report string
}

type ParseNamesRequest struct{}

type ParseNamesResponse struct {
	BlockCount uint32
}

type ParseObjectsRequest struct{}

type ParseObjectsResponse struct {
	ObjectCount uint32
}

type ListPackagesRequest struct{}

type ListPackagesResponse struct {
	Packages []query.PackageSummary
}

type ListObjectsRequest struct {
	Package  string
	Category string
}

type ListObjectsResponse struct {
	Objects []query.ObjectSummary
}

type DetailsRequest struct {
	Address uint64
}

type DetailsResponse struct {
	Object query.DetailedObject
}

type SearchRequest struct {
	Query string
	Mode  string
}

type SearchResponse struct {
	Results []query.SearchResult
}

type FindInstancesRequest struct {
	ObjectAddressHex string
}

type FindInstancesResponse struct {
	Instances []query.InstanceHit
}

type InspectHierarchyRequest struct {
	InstanceAddressHex string
}

type InspectHierarchyResponse struct {
	Entries []query.HierarchyEntry
}

type InspectInstanceRequest struct {
	InstanceAddressHex string
	ClassAddressHex    string
}

type InspectInstanceResponse struct {
	Properties []query.InstancePropertyInfo
}

type ExpandArrayRequest struct {
	ArrayAddressHex string
	InnerType       string
	Count           int32
}

type ExpandArrayResponse struct {
	Properties []query.InstancePropertyInfo
}

// ErrorResponse is what every command maps a failure to on the wire.
type ErrorResponse struct {
	Error string
}
