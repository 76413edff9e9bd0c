package pulse

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var samplerCache, _ = lru.NewWithEvict[wgpu.SamplerDescriptor, *wgpu.Sampler](16, samplerCacheOnEvict)

func samplerCacheOnEvict(key wgpu.SamplerDescriptor, value *wgpu.Sampler) {
	value.Release()
}

// NearestSampler describes a sampler without any filtering that clamps
// texture coordinates to the edge of the texture.
func NearestSampler() wgpu.SamplerDescriptor {
	return wgpu.SamplerDescriptor{
		Label:         "Nearest",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}

// CachedSampler returns a sampler matching your description. The sampler may be cached,
// you must not call wgpu.Sampler.Release() on it.
func CachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	cachedSampler, ok := samplerCache.Get(desc)
	if ok {
		return cachedSampler, nil
	}

	sampler, err := dev.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("create sampler %q: %w", desc.Label, err)
	}

	slog.Debug("Created sampler", slog.String("label", desc.Label))

	samplerCache.Add(desc, sampler)

	return sampler, nil
}
