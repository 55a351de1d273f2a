// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "pagetext "+Version) {
		t.Errorf("unexpected version info %q", info)
	}
	if Short() != Version {
		t.Errorf("expected Short()=%q, got %q", Version, Short())
	}
	if Full()["platform"] != Platform {
		t.Errorf("expected platform %q in Full()", Platform)
	}
}
