package precision

import "fmt"

// Arena hands out scratch values with stack discipline. Values allocated
// after a Mark are handed out again once that mark is released, so nothing
// allocated inside a scope survives it.
type Arena[E any] struct {
	slots []*E
	top   int
}

// Alloc returns the next free slot. The slot keeps whatever value it held
// the last time it was used; callers reset it.
func (a *Arena[E]) Alloc() *E {
	if a.top == len(a.slots) {
		a.slots = append(a.slots, new(E))
	}
	e := a.slots[a.top]
	a.top++
	return e
}

// Mark returns the current top of the arena.
func (a *Arena[E]) Mark() int {
	return a.top
}

// Release pops every slot allocated since mark was taken.
func (a *Arena[E]) Release(mark int) {
	if mark < 0 || mark > a.top {
		panic(fmt.Sprintf("precision: release of mark %d with top at %d", mark, a.top))
	}
	a.top = mark
}

// InUse reports how many slots are currently allocated.
func (a *Arena[E]) InUse() int {
	return a.top
}
