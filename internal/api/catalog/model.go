package catalog

import (
	"encoding/json"

	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/internal/infra/blob"
	"github.com/ahrav/enumkit/internal/infra/blob/core"
	"github.com/ahrav/enumkit/pkg/catalog"
)

// setInfo is the wire form of one registered set's summary.
type setInfo struct {
	Name    string          `json:"name"`
	Len     int             `json:"len"`
	Default *catalog.Record `json:"default,omitempty"`
}

func toSetInfo(info appcatalog.SetInfo) setInfo {
	return setInfo{Name: info.Name, Len: info.Len, Default: info.Default}
}

// setsResponse lists every registered set.
type setsResponse struct {
	Sets []setInfo `json:"sets"`
}

// Encode implements the web.Encoder interface.
func (sr setsResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(sr)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// setResponse carries one set summary.
type setResponse struct {
	Set setInfo `json:"set"`
}

// Encode implements the web.Encoder interface.
func (sr setResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(sr)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// entriesResponse carries one set's entries in the requested view.
type entriesResponse struct {
	Entries []catalog.Record `json:"entries"`
}

// Encode implements the web.Encoder interface.
func (er entriesResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(er)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// entryResponse carries one resolved entry.
type entryResponse struct {
	Entry catalog.Record `json:"entry"`
}

// Encode implements the web.Encoder interface.
func (er entryResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(er)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// exportRequest selects the blob backend an export writes through.
type exportRequest struct {
	Driver    string `json:"driver" validate:"omitempty,oneof=fs memory s3"`
	Prefix    string `json:"prefix,omitempty"`
	Root      string `json:"root,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	PathStyle bool   `json:"pathStyle,omitempty"`
}

func (er exportRequest) storeConfig() blob.Config {
	return blob.Config{
		Driver:    core.Driver(er.Driver),
		Root:      er.Root,
		Bucket:    er.Bucket,
		Region:    er.Region,
		Endpoint:  er.Endpoint,
		PathStyle: er.PathStyle,
	}
}

// exportResponse reports the keys an export wrote.
type exportResponse struct {
	Driver string   `json:"driver"`
	Keys   []string `json:"keys"`
}

// Encode implements the web.Encoder interface.
func (er exportResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(er)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}
