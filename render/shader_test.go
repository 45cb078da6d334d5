// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strings"
	"testing"
)

const testShaderWGSL = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestCompileShaderWithoutDevice(t *testing.T) {
	m, err := CompileShader(NullDeviceHandle{}, "test", testShaderWGSL)
	if err != nil {
		t.Fatalf("CompileShader() error = %v", err)
	}
	if m.Label() != "test" {
		t.Errorf("Label() = %q, want %q", m.Label(), "test")
	}
	if len(m.Words()) == 0 {
		t.Error("Words() is empty, want compiled SPIR-V")
	}
	// SPIR-V modules start with the magic number 0x07230203.
	if m.Words()[0] != 0x07230203 {
		t.Errorf("Words()[0] = %#x, want SPIR-V magic 0x07230203", m.Words()[0])
	}
	// No HAL device was available, so no GPU-side module exists.
	if m.HalModule() != nil {
		t.Error("HalModule() should be nil without a GPU device")
	}

	// Release without a GPU module is safe, repeatedly.
	m.Release()
	m.Release()
}

func TestCompileShaderInvalidSource(t *testing.T) {
	_, err := CompileShader(NullDeviceHandle{}, "broken", "this is not wgsl")
	if err == nil {
		t.Fatal("CompileShader() with invalid WGSL should fail")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q should name the shader label", err)
	}
}
