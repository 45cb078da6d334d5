// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ShaderModule is a compiled shader owned by a layer or shared through the
// frame context. The WGSL source is compiled to SPIR-V at construction, so
// compilation failures surface from [CompileShader] and never from a draw
// call.
//
// When the device handle carries no HAL device (CPU-only operation), the
// module is validated and its SPIR-V retained, but no GPU-side module is
// instantiated; HalModule returns nil in that case.
type ShaderModule struct {
	label  string
	spirv  []uint32
	device hal.Device
	module hal.ShaderModule
}

// halProvider is the optional device-handle capability exposing raw HAL
// types, matching the convention used across the gogpu stack.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// CompileShader compiles WGSL source and, when dev exposes a HAL device,
// instantiates the GPU shader module. Errors are construction-time layer
// resource failures: the caller reports them to the layer's owner and
// falls back to producing no draw output.
func CompileShader(dev DeviceHandle, label, wgsl string) (*ShaderModule, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("render: compile shader %q: %w", label, err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	m := &ShaderModule{label: label, spirv: spirv}

	hp, ok := dev.(halProvider)
	if !ok {
		logger().Debug("shader validated without GPU device", "label", label)
		return m, nil
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		logger().Debug("shader validated without GPU device", "label", label)
		return m, nil
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create shader module %q: %w", label, err)
	}
	m.device = device
	m.module = module
	logger().Info("shader module compiled", "label", label, "words", len(spirv))
	return m, nil
}

// Label returns the module's debug label.
func (m *ShaderModule) Label() string { return m.label }

// Words returns the compiled SPIR-V code.
func (m *ShaderModule) Words() []uint32 { return m.spirv }

// HalModule returns the GPU-side module, or nil when the shader was
// compiled without a device.
func (m *ShaderModule) HalModule() hal.ShaderModule { return m.module }

// Release destroys the GPU-side module if one was created. Safe to call
// more than once.
func (m *ShaderModule) Release() {
	if m.module != nil && m.device != nil {
		m.device.DestroyShaderModule(m.module)
		m.module = nil
	}
}
