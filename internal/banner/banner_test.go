package banner

import (
	"reflect"
	"testing"
)

func TestDefaultState(t *testing.T) {
	st := DefaultState()

	if st.DiscountPercentage != "-30" {
		t.Errorf("DiscountPercentage = %q, want -30", st.DiscountPercentage)
	}
	if st.DiscountType != "на все меню" {
		t.Errorf("DiscountType = %q", st.DiscountType)
	}
	if st.PriceWithDiscount != "3.003₸" {
		t.Errorf("PriceWithDiscount = %q", st.PriceWithDiscount)
	}
	if st.BgScale != 1.2 {
		t.Errorf("BgScale = %v, want 1.2", st.BgScale)
	}
	if st.BgPosition.X != 0 || st.BgPosition.Y != 0 {
		t.Errorf("BgPosition = %+v, want origin", st.BgPosition)
	}
	if st.Background.Source == "" {
		t.Error("default background source must be set")
	}
}

func TestPatchApplyMergesOnlySetFields(t *testing.T) {
	before := DefaultState()
	dish := "X"

	after := Patch{DishName: &dish}.Apply(before)

	if after.DishName != "X" {
		t.Fatalf("DishName = %q, want X", after.DishName)
	}

	// Every other field must be untouched.
	after.DishName = before.DishName
	if !reflect.DeepEqual(after, before) {
		t.Errorf("patch modified unrelated fields:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestPatchApplyDoesNotMutateInput(t *testing.T) {
	before := DefaultState()
	scale := 3.5

	_ = Patch{BgScale: &scale}.Apply(before)

	if before.BgScale != 1.2 {
		t.Errorf("input state mutated: BgScale = %v", before.BgScale)
	}
}

func TestEmptyPatchIsIdentity(t *testing.T) {
	before := DefaultState()
	after := Patch{}.Apply(before)
	if !reflect.DeepEqual(after, before) {
		t.Errorf("empty patch changed state")
	}
}

func TestDefaultLayoutMatchesDesign(t *testing.T) {
	l := DefaultLayout()

	if l.DiscountBlock.X != 38 || l.DiscountBlock.Y != 166 {
		t.Errorf("discount block origin = (%v, %v), want (38, 166)", l.DiscountBlock.X, l.DiscountBlock.Y)
	}
	if l.DiscountBlock.Width != 800 || l.DiscountBlock.Height != 400 {
		t.Errorf("discount block size = %vx%v, want 800x400", l.DiscountBlock.Width, l.DiscountBlock.Height)
	}
	if l.NumberSize != l.NumberLineHeight {
		t.Errorf("number line height %v should match font size %v", l.NumberLineHeight, l.NumberSize)
	}
}
