package gpuinfo

import (
	"fmt"
	"sort"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// VulkanDevice is one physical device reported by the loader
type VulkanDevice struct {
	Name       string
	Type       string
	APIVersion string
	Driver     uint32
}

// VulkanInfo is the result of probing the Vulkan loader
type VulkanInfo struct {
	Available  bool
	Extensions []string
	Devices    []VulkanDevice
	Err        error
}

var appInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "gpuinfo\x00",
	PEngineName:        "mini-tri\x00",
}

// ProbeVulkan loads Vulkan through glfw and lists instance extensions and devices.
// required is only called once Vulkan is known to be present.
// glfw must be initialized. A missing loader is reported as unavailable, not as an error.
func ProbeVulkan(required func() []string) VulkanInfo {
	if !glfw.VulkanSupported() {
		return VulkanInfo{}
	}

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return VulkanInfo{Err: fmt.Errorf("vulkan init: %w", err)}
	}

	info := VulkanInfo{Available: true}

	exts, err := instanceExtensions()
	if err != nil {
		info.Err = err
		return info
	}
	info.Extensions = exts

	var instance vk.Instance
	names := safeStrings(required())
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(names)),
		PpEnabledExtensionNames: names,
	}, nil, &instance)
	if err := vk.Error(ret); err != nil {
		info.Err = fmt.Errorf("create instance: %w", err)
		return info
	}
	defer vk.DestroyInstance(instance, nil)

	if err := vk.InitInstance(instance); err != nil {
		info.Err = fmt.Errorf("init instance: %w", err)
		return info
	}

	info.Devices, info.Err = physicalDevices(instance)
	return info
}

func instanceExtensions() ([]string, error) {
	var count uint32
	ret := vk.EnumerateInstanceExtensionProperties("", &count, nil)
	if err := vk.Error(ret); err != nil {
		return nil, fmt.Errorf("count instance extensions: %w", err)
	}
	list := make([]vk.ExtensionProperties, count)
	ret = vk.EnumerateInstanceExtensionProperties("", &count, list)
	if err := vk.Error(ret); err != nil {
		return nil, fmt.Errorf("list instance extensions: %w", err)
	}

	names := make([]string, 0, len(list))
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	sort.Strings(names)
	return names, nil
}

func physicalDevices(instance vk.Instance) ([]VulkanDevice, error) {
	var count uint32
	ret := vk.EnumeratePhysicalDevices(instance, &count, nil)
	if err := vk.Error(ret); err != nil {
		return nil, fmt.Errorf("count physical devices: %w", err)
	}
	gpus := make([]vk.PhysicalDevice, count)
	ret = vk.EnumeratePhysicalDevices(instance, &count, gpus)
	if err := vk.Error(ret); err != nil {
		return nil, fmt.Errorf("list physical devices: %w", err)
	}

	devices := make([]VulkanDevice, 0, len(gpus))
	for _, gpu := range gpus {
		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(gpu, &props)
		props.Deref()
		devices = append(devices, VulkanDevice{
			Name:       vk.ToString(props.DeviceName[:]),
			Type:       deviceTypeName(props.DeviceType),
			APIVersion: FormatVersion(props.ApiVersion),
			Driver:     props.DriverVersion,
		})
	}
	return devices, nil
}

func deviceTypeName(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual"
	case vk.PhysicalDeviceTypeCpu:
		return "cpu"
	default:
		return "other"
	}
}

// FormatVersion decodes a packed Vulkan version number
func FormatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}

// vulkan-go expects NUL-terminated names
func safeStrings(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if len(s) == 0 || s[len(s)-1] != 0 {
			s += "\x00"
		}
		out = append(out, s)
	}
	return out
}
