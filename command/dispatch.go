// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"ueinspect/anchor"
	"ueinspect/core"
	"ueinspect/process"
	"ueinspect/query"
	"ueinspect/session"
	"ueinspect/uerrors"
)

// Dispatcher routes a command name and a JSON payload to the matching
// Session method, one case per row of the command table. It is shared
// by the shell REPL and the HTTP server; neither has to know the
// Request/Response shapes itself.
type Dispatcher struct {
	Sess *session.Session
}

// NewDispatcher wraps sess for command routing.
func NewDispatcher(sess *session.Session) *Dispatcher {
	return &Dispatcher{Sess: sess}
}

// Dispatch unmarshals payload into the Request type for name, invokes
// the matching handler, and marshals the result. An error from the
// handler is marshaled as ErrorResponse rather than returned, since
// every wire caller (HTTP, REPL) wants a JSON body even on failure.
func (d *Dispatcher) Dispatch(name string, payload []byte) []byte {
	resp, err := d.dispatch(name, payload)
	if err != nil {
		resp = ErrorResponse{Error: err.Error()}
	}
	out, merr := json.Marshal(resp)
	if merr != nil {
		return []byte(`{"error":"internal: failed to marshal response"}`)
	}
	return out
}

func (d *Dispatcher) dispatch(name string, payload []byte) (interface{}, error) {
	switch name {
	case "listProcesses":
		return d.ListProcesses()
	case "attach":
		var req AttachRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.Attach(&req)
	case "getVersion":
		return d.GetVersion()
	case "resolveNamePool":
		return d.ResolveAnchor(anchor.NamePoolBase)
	case "resolveObjectArray":
		return d.ResolveAnchor(anchor.ObjectArrayBase)
	case "resolveWorld":
		return d.ResolveAnchor(anchor.WorldBase)
	case "showAnchors":
		return d.ShowAnchors()
	case "parseNames":
		return d.ParseNames()
	case "parseObjects":
		return d.ParseObjects()
	case "listPackages":
		return d.ListPackages()
	case "listObjects":
		var req ListObjectsRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.ListObjects(&req)
	case "details":
		var req DetailsRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.Details(&req)
	case "search":
		var req SearchRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.Search(&req)
	case "findInstances":
		var req FindInstancesRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.FindInstances(&req)
	case "inspectHierarchy":
		var req InspectHierarchyRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.InspectHierarchy(&req)
	case "inspectInstance":
		var req InspectInstanceRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.InspectInstance(&req)
	case "expandArray":
		var req ExpandArrayRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return d.ExpandArray(&req)
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}

// parseAddr accepts either a decimal or 0x-prefixed hex string, per
// the command surface's address encoding.
func parseAddr(s string) (core.Address, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", uerrors.ErrInvalidAddress, s)
	}
	return core.Address(v), nil
}

func (d *Dispatcher) ListProcesses() (*ListProcessesResponse, error) {
	infos, err := process.ListProcesses()
	if err != nil {
		return nil, err
	}
	out := make([]ProcessInfo, len(infos))
	for i, info := range infos {
		out[i] = ProcessInfo{PID: info.PID, Name: info.Name}
	}
	return &ListProcessesResponse{Processes: out}, nil
}

func (d *Dispatcher) Attach(req *AttachRequest) (*AttachResponse, error) {
	msg, err := d.Sess.Attach(req.PID, req.Name)
	if err != nil {
		return nil, err
	}
	return &AttachResponse{Confirmation: msg}, nil
}

func (d *Dispatcher) GetVersion() (*GetVersionResponse, error) {
	if d.Sess.State() < session.Attached {
		return nil, uerrors.ErrNotAttached
	}
	version, err := process.QueryVersion(d.Sess.Handle)
	if err != nil {
		return nil, err
	}
	return &GetVersionResponse{Version: version}, nil
}

func (d *Dispatcher) ResolveAnchor(name anchor.Name) (*ResolveAnchorResponse, error) {
	addr, err := d.Sess.ResolveAnchor(name)
	if err != nil {
		return nil, err
	}
	return &ResolveAnchorResponse{Address: uint64(addr)}, nil
}

func (d *Dispatcher) ShowAnchors() (*ShowAnchorsResponse, error) {
	if d.Sess.State() < session.Anchored {
		return nil, uerrors.NotYetParsed("an anchor")
	}
	a := d.Sess.Anchors
	var b strings.Builder
	rows := []struct {
		name anchor.Name
		addr core.Address
	}{
		{anchor.NamePoolBase, a.NamePoolBase},
		{anchor.ObjectArrayBase, a.ObjectArrayBase},
		{anchor.WorldBase, a.WorldBase},
	}
	for _, row := range rows {
		if row.addr == 0 {
			fmt.Fprintf(&b, "%-16s <unresolved>\n", row.name+":")
			continue
		}
		fmt.Fprintf(&b, "%-16s %s", row.name+":", row.addr)
		if cand, ok := d.Sess.Sources[row.name]; ok {
			fmt.Fprintf(&b, "  via %q", cand.Signature)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%-16s 0x%X\n", "ElementSize:", d.Sess.ElemSize)
	fmt.Fprintf(&b, "%-16s %s\n", "Profile:", d.Sess.Profile.Name)
	return &ShowAnchorsResponse{Report: b.String()}, nil
}

func (d *Dispatcher) ParseNames() (*ParseNamesResponse, error) {
	blocks, err := d.Sess.ParseNames(nil)
	if err != nil {
		return nil, err
	}
	return &ParseNamesResponse{BlockCount: uint32(blocks)}, nil
}

func (d *Dispatcher) ParseObjects() (*ParseObjectsResponse, error) {
	count, err := d.Sess.ParseObjects(nil)
	if err != nil {
		return nil, err
	}
	return &ParseObjectsResponse{ObjectCount: uint32(count)}, nil
}

func (d *Dispatcher) ListPackages() (*ListPackagesResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	return &ListPackagesResponse{Packages: query.ListPackages(d.Sess.Cache)}, nil
}

func (d *Dispatcher) ListObjects(req *ListObjectsRequest) (*ListObjectsResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	objs := query.ListObjects(d.Sess.Cache, req.Package, query.ParseCategory(req.Category))
	return &ListObjectsResponse{Objects: objs}, nil
}

func (d *Dispatcher) Details(req *DetailsRequest) (*DetailsResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	obj, ok := d.Sess.Surface.GetObjectDetails(core.Address(req.Address))
	if !ok {
		return nil, fmt.Errorf("%w: %#x", uerrors.ErrCatalogMiss, req.Address)
	}
	return &DetailsResponse{Object: obj}, nil
}

func (d *Dispatcher) Search(req *SearchRequest) (*SearchResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	mode := query.ParseSearchMode(req.Mode)
	results := d.Sess.Surface.GlobalSearch(req.Query, mode, 0)
	return &SearchResponse{Results: results}, nil
}

func (d *Dispatcher) FindInstances(req *FindInstancesRequest) (*FindInstancesResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	classAddr, err := parseAddr(req.ObjectAddressHex)
	if err != nil {
		return nil, err
	}
	hits, err := d.Sess.Surface.FindInstances(classAddr)
	if err != nil {
		return nil, err
	}
	return &FindInstancesResponse{Instances: hits}, nil
}

func (d *Dispatcher) InspectHierarchy(req *InspectHierarchyRequest) (*InspectHierarchyResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	instAddr, err := parseAddr(req.InstanceAddressHex)
	if err != nil {
		return nil, err
	}
	entries, ok := d.Sess.Surface.InspectHierarchy(instAddr)
	if !ok {
		return nil, fmt.Errorf("%w: %s", uerrors.ErrCatalogMiss, req.InstanceAddressHex)
	}
	return &InspectHierarchyResponse{Entries: entries}, nil
}

func (d *Dispatcher) InspectInstance(req *InspectInstanceRequest) (*InspectInstanceResponse, error) {
	classAddr, err := parseAddr(req.ClassAddressHex)
	if err != nil {
		return nil, err
	}
	if err := d.Sess.RequireKnownClass(classAddr); err != nil {
		return nil, err
	}
	instAddr, err := parseAddr(req.InstanceAddressHex)
	if err != nil {
		return nil, err
	}
	props, ok := d.Sess.Surface.InspectInstance(classAddr, instAddr)
	if !ok {
		return nil, fmt.Errorf("%w: %s", uerrors.ErrInvalidAddress, req.InstanceAddressHex)
	}
	return &InspectInstanceResponse{Properties: props}, nil
}

func (d *Dispatcher) ExpandArray(req *ExpandArrayRequest) (*ExpandArrayResponse, error) {
	if err := d.Sess.RequireCatalogReady(); err != nil {
		return nil, err
	}
	arrAddr, err := parseAddr(req.ArrayAddressHex)
	if err != nil {
		return nil, err
	}
	props := d.Sess.Surface.ExpandArray(arrAddr, req.InnerType, int(req.Count))
	return &ExpandArrayResponse{Properties: props}, nil
}
