// 照片槽位表
package layout

import (
	"log"

	"github.com/decker502/startree/pkg/types"
)

// Photo 用户照片的元信息
// 图像内容由外部存储持有，核心只关心身份与版本
type Photo struct {
	// ID 照片唯一标识（空槽位为空字符串）
	ID string
	// Version 版本计数，照片内容替换时递增，渲染端据此刷新贴图
	Version int
	// Empty 空槽位标记
	Empty bool
}

// Table 照片槽位表
//
// 槽位身份按序号稳定：增删照片不会移动其他槽位的布局位置；
// 移除照片只是把槽位标记为空，槽位本身保留，避免轮廓重新洗牌
type Table struct {
	shape types.ShapeKind
	slots []Slot
	phots []Photo
}

// NewTable 按照片列表建立槽位表
// 照片数为 0 时建立默认数量的空槽位，保持轮廓有内容
func NewTable(photos []Photo, shapeKind types.ShapeKind) *Table {
	count := len(photos)
	if count == 0 {
		count = DefaultSlotCount
	}
	t := &Table{
		shape: shapeKind.Normalize(),
		slots: Compute(count, shapeKind),
		phots: make([]Photo, count),
	}
	for i := range t.phots {
		if i < len(photos) {
			t.phots[i] = photos[i]
		} else {
			t.phots[i] = Photo{Empty: true}
		}
	}
	return t
}

// Len 槽位数
func (t *Table) Len() int {
	return len(t.slots)
}

// Slot 返回序号对应的槽位布局（越界返回零值槽位，不崩溃）
func (t *Table) Slot(i int) Slot {
	if i < 0 || i >= len(t.slots) {
		return Slot{Index: -1}
	}
	return t.slots[i]
}

// Slots 返回全部槽位布局（只读约定）
func (t *Table) Slots() []Slot {
	return t.slots
}

// Photo 返回序号对应的照片（越界返回空照片）
func (t *Table) Photo(i int) Photo {
	if i < 0 || i >= len(t.phots) {
		return Photo{Empty: true}
	}
	return t.phots[i]
}

// SetPhoto 替换序号位置的照片，版本自动递增
// 其他槽位不受影响（槽位身份稳定）
func (t *Table) SetPhoto(i int, id string) {
	if i < 0 || i >= len(t.phots) {
		log.Printf("[Layout] Warning: 槽位序号越界 %d (共 %d)", i, len(t.phots))
		return
	}
	t.phots[i] = Photo{ID: id, Version: t.phots[i].Version + 1}
}

// RemovePhoto 移除序号位置的照片：槽位保留并标记为空
func (t *Table) RemovePhoto(i int) {
	if i < 0 || i >= len(t.phots) {
		return
	}
	t.phots[i] = Photo{Empty: true, Version: t.phots[i].Version + 1}
}
