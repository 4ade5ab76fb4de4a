package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/startree/pkg/layout"
)

// PhotoEntry 清单中的一条照片记录
type PhotoEntry struct {
	ID      string `yaml:"id"`      // 照片唯一标识，空槽位为空字符串
	Slot    int    `yaml:"slot"`    // 槽位序号
	Version int    `yaml:"version"` // 版本计数，替换内容时递增
	Empty   bool   `yaml:"empty"`   // 空槽位标记
}

// PhotoManifest 照片清单
// 只记录元信息，图像内容按 ID 单独存为二进制对象
type PhotoManifest struct {
	NextID  int          `yaml:"nextId"`  // 下一个照片 ID 的自增计数
	Entries []PhotoEntry `yaml:"entries"` // 按槽位序号升序
}

// PhotoStore 照片存储管理器
//
// 职责：
//   - 照片图像内容（编码后的字节）的持久化与读取
//   - 清单（槽位 ↔ 照片身份/版本）的维护
//
// 架构说明：
//   - 持久化走 gdata 跨平台存储，清单为 YAML（与项目其他配置保持一致）
//   - gdata 管理器可为 nil：降级为纯内存模式，仅本次会话有效
//   - 槽位身份稳定：移除照片只标记为空，不移动其他槽位
type PhotoStore struct {
	gdataManager *gdata.Manager
	manifest     *PhotoManifest
	// blobs 降级模式下的内存图像缓存
	blobs map[string][]byte
}

// 存储路径常量
const (
	photoObject      = "photos"
	manifestProperty = "manifest"
)

// NewPhotoStore 创建照片存储管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *PhotoStore: 照片存储实例
//   - error: 如果加载清单失败返回错误（不影响创建）
func NewPhotoStore(gdataManager *gdata.Manager) (*PhotoStore, error) {
	ps := &PhotoStore{
		gdataManager: gdataManager,
		manifest:     &PhotoManifest{NextID: 1},
		blobs:        make(map[string][]byte),
	}

	if err := ps.loadManifest(); err != nil {
		log.Printf("[PhotoStore] Warning: Failed to load manifest: %v (starting empty)", err)
	}

	return ps, nil
}

// loadManifest 从 gdata 加载清单
func (ps *PhotoStore) loadManifest() error {
	if ps.gdataManager == nil {
		return nil
	}
	if !ps.gdataManager.ObjectPropExists(photoObject, manifestProperty) {
		return nil
	}

	data, err := ps.gdataManager.LoadObjectProp(photoObject, manifestProperty)
	if err != nil {
		return fmt.Errorf("failed to load photo manifest: %w", err)
	}

	var m PhotoManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to unmarshal photo manifest: %w", err)
	}
	if m.NextID < 1 {
		m.NextID = 1
	}

	ps.manifest = &m
	log.Printf("[PhotoStore] Manifest loaded: %d entries", len(m.Entries))
	return nil
}

// saveManifest 保存清单到 gdata（降级模式静默跳过）
func (ps *PhotoStore) saveManifest() error {
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal photo manifest: %w", err)
	}
	if err := ps.gdataManager.SaveObjectProp(photoObject, manifestProperty, data); err != nil {
		return fmt.Errorf("failed to save photo manifest: %w", err)
	}
	return nil
}

// entryAt 找到槽位对应的清单记录，不存在时返回 nil
func (ps *PhotoStore) entryAt(slot int) *PhotoEntry {
	for i := range ps.manifest.Entries {
		if ps.manifest.Entries[i].Slot == slot {
			return &ps.manifest.Entries[i]
		}
	}
	return nil
}

// SetPhoto 在槽位放入一张照片，返回分配的照片 ID
//
// 同槽位重复放入视为替换：版本递增，渲染端据此刷新贴图。
// 图像内容为已编码的字节（PNG/JPEG），本层不解码。
func (ps *PhotoStore) SetPhoto(slot int, img []byte) (string, error) {
	if slot < 0 {
		return "", fmt.Errorf("invalid photo slot: %d", slot)
	}

	id := fmt.Sprintf("photo-%d", ps.manifest.NextID)
	ps.manifest.NextID++

	e := ps.entryAt(slot)
	if e == nil {
		ps.manifest.Entries = append(ps.manifest.Entries, PhotoEntry{Slot: slot})
		e = &ps.manifest.Entries[len(ps.manifest.Entries)-1]
	}
	e.ID = id
	e.Version++
	e.Empty = false

	if ps.gdataManager != nil {
		if err := ps.gdataManager.SaveObjectProp(photoObject, id, img); err != nil {
			return "", fmt.Errorf("failed to save photo %s: %w", id, err)
		}
	} else {
		ps.blobs[id] = img
	}

	if err := ps.saveManifest(); err != nil {
		return "", err
	}
	log.Printf("[PhotoStore] Photo %s set at slot %d (version %d)", id, slot, e.Version)
	return id, nil
}

// RemovePhoto 移除槽位上的照片：槽位保留并标记为空
// 槽位本就为空时为空操作
func (ps *PhotoStore) RemovePhoto(slot int) error {
	e := ps.entryAt(slot)
	if e == nil || e.Empty {
		return nil
	}

	if ps.gdataManager != nil && e.ID != "" {
		if err := ps.gdataManager.DeleteObjectProp(photoObject, e.ID); err != nil {
			// 图像删除失败只记录，清单照常更新
			log.Printf("[PhotoStore] Warning: Failed to delete photo %s: %v", e.ID, err)
		}
	}
	delete(ps.blobs, e.ID)

	e.ID = ""
	e.Version++
	e.Empty = true
	return ps.saveManifest()
}

// PhotoData 读取照片的图像内容
func (ps *PhotoStore) PhotoData(id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("empty photo id")
	}
	if ps.gdataManager == nil {
		data, ok := ps.blobs[id]
		if !ok {
			return nil, fmt.Errorf("photo %s not found", id)
		}
		return data, nil
	}

	data, err := ps.gdataManager.LoadObjectProp(photoObject, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo %s: %w", id, err)
	}
	return data, nil
}

// Photos 按槽位序号展开成照片列表，供布局槽位表使用
// count 为期望槽位数；清单中超出范围的记录忽略，缺席槽位为空照片
func (ps *PhotoStore) Photos(count int) []layout.Photo {
	if count <= 0 {
		count = layout.DefaultSlotCount
	}
	out := make([]layout.Photo, count)
	for i := range out {
		out[i] = layout.Photo{Empty: true}
	}
	for _, e := range ps.manifest.Entries {
		if e.Slot < 0 || e.Slot >= count {
			continue
		}
		out[e.Slot] = layout.Photo{ID: e.ID, Version: e.Version, Empty: e.Empty}
	}
	return out
}

// Count 清单中非空照片数
func (ps *PhotoStore) Count() int {
	n := 0
	for _, e := range ps.manifest.Entries {
		if !e.Empty {
			n++
		}
	}
	return n
}
