package geometry

import (
	"math"
	"testing"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

func TestDisk_ClosestIntersection(t *testing.T) {
	disk := NewDisk(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), 3.0)

	// Hit within the radius
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	hit, ok := disk.ClosestIntersection(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}

	// Plane hit beyond the radius is rejected
	outside := core.NewRay(core.NewVec3(4, 0, 0), core.NewVec3(0, -1, 0))
	if _, ok := disk.ClosestIntersection(outside); ok {
		t.Error("Expected miss outside the disk radius")
	}

	// Exactly on the rim still counts
	rim := core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(0, -1, 0))
	if _, ok := disk.ClosestIntersection(rim); !ok {
		t.Error("Expected hit on the rim")
	}
}

func TestDisk_TexCoords(t *testing.T) {
	disk := NewDisk(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 2.0)

	// The center maps to the middle of the texture
	u, v := disk.TexCoords(core.NewVec3(0, 0, 0))
	if math.Abs(u-0.5) > 1e-9 || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("Expected center (0.5, 0.5), got (%f, %f)", u, v)
	}

	// Rim points map to the edges of [0,1]
	u, v = disk.TexCoords(disk.frame.ToGlobal(core.NewVec3(2, 0, 0)))
	if math.Abs(u-1.0) > 1e-9 || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("Expected rim (1.0, 0.5), got (%f, %f)", u, v)
	}
	u, v = disk.TexCoords(disk.frame.ToGlobal(core.NewVec3(0, 2, 0)))
	if math.Abs(u-0.5) > 1e-9 || math.Abs(v-0.0) > 1e-9 {
		t.Errorf("Expected rim (0.5, 0.0), got (%f, %f)", u, v)
	}
}
