// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"cosmos-txmsg/types"
)

/*
   COSMWASM v1beta1 MESSAGES
   - only registered when the wasm subset is enabled
   - contract messages (init/exec/migrate) are raw JSON bytes on the wire
*/

const (
	TypeURLMsgStoreCode           = "/cosmwasm.wasm.v1beta1.MsgStoreCode"
	TypeURLMsgInstantiateContract = "/cosmwasm.wasm.v1beta1.MsgInstantiateContract"
	TypeURLMsgExecuteContract     = "/cosmwasm.wasm.v1beta1.MsgExecuteContract"
	TypeURLMsgMigrateContract     = "/cosmwasm.wasm.v1beta1.MsgMigrateContract"
	TypeURLMsgUpdateAdmin         = "/cosmwasm.wasm.v1beta1.MsgUpdateAdmin"
	TypeURLMsgClearAdmin          = "/cosmwasm.wasm.v1beta1.MsgClearAdmin"
)

// AccessType mirrors cosmwasm.wasm.v1beta1.AccessType.
type AccessType int32

const (
	AccessTypeUnspecified AccessType = 0
	AccessTypeNobody      AccessType = 1
	AccessTypeOnlyAddress AccessType = 2
	AccessTypeEverybody   AccessType = 3
)

// AccessConfig restricts who may instantiate stored code.
type AccessConfig struct {
	Permission AccessType `json:"permission"`
	Address    string     `json:"address,omitempty"`
}

func (c AccessConfig) marshal() []byte {
	var b []byte
	b = types.AppendUint64(b, 1, uint64(c.Permission))
	b = types.AppendString(b, 2, c.Address)
	return b
}

// mergeAccessConfig decodes data on top of c.
func mergeAccessConfig(c *AccessConfig, data []byte) error {
	merged := *c
	err := types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, n uint64) error {
		switch num {
		case 1:
			var p uint64
			if err := readUint64(num, typ, n, &p); err != nil {
				return err
			}
			merged.Permission = AccessType(int32(p))
		case 2:
			return readString(num, typ, v, &merged.Address)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("access config: %w", err)
	}
	*c = merged
	return nil
}

// -------------------- MsgStoreCode --------------------

type MsgStoreCode struct {
	Sender                string        `json:"sender"`
	WASMByteCode          []byte        `json:"wasm_byte_code"`
	Source                string        `json:"source,omitempty"`
	Builder               string        `json:"builder,omitempty"`
	InstantiatePermission *AccessConfig `json:"instantiate_permission,omitempty"`
}

func (MsgStoreCode) TypeURL() string { return TypeURLMsgStoreCode }

func (m MsgStoreCode) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendBytes(b, 2, m.WASMByteCode)
	b = types.AppendString(b, 3, m.Source)
	b = types.AppendString(b, 4, m.Builder)
	if m.InstantiatePermission != nil {
		b = types.AppendMessage(b, 5, m.InstantiatePermission.marshal())
	}
	return b, nil
}

func (m *MsgStoreCode) Unmarshal(data []byte) error {
	*m = MsgStoreCode{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 2:
			return readBytes(num, typ, v, &m.WASMByteCode)
		case 3:
			return readString(num, typ, v, &m.Source)
		case 4:
			return readString(num, typ, v, &m.Builder)
		case 5:
			if err := types.ExpectType(num, typ, protowire.BytesType); err != nil {
				return err
			}
			if m.InstantiatePermission == nil {
				m.InstantiatePermission = &AccessConfig{}
			}
			return mergeAccessConfig(m.InstantiatePermission, v)
		}
		return nil
	})
}

// -------------------- MsgInstantiateContract --------------------

type MsgInstantiateContract struct {
	Sender  string       `json:"sender"`
	Admin   string       `json:"admin,omitempty"`
	CodeID  uint64       `json:"code_id"`
	Label   string       `json:"label"`
	InitMsg []byte       `json:"init_msg"`
	Funds   []types.Coin `json:"funds,omitempty"`
}

func (MsgInstantiateContract) TypeURL() string { return TypeURLMsgInstantiateContract }

func (m MsgInstantiateContract) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendString(b, 2, m.Admin)
	b = types.AppendUint64(b, 3, m.CodeID)
	b = types.AppendString(b, 4, m.Label)
	b = types.AppendBytes(b, 5, m.InitMsg)
	b = types.AppendCoins(b, 6, m.Funds)
	return b, nil
}

func (m *MsgInstantiateContract) Unmarshal(data []byte) error {
	*m = MsgInstantiateContract{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, n uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 2:
			return readString(num, typ, v, &m.Admin)
		case 3:
			return readUint64(num, typ, n, &m.CodeID)
		case 4:
			return readString(num, typ, v, &m.Label)
		case 5:
			return readBytes(num, typ, v, &m.InitMsg)
		case 6:
			return readCoin(num, typ, v, &m.Funds)
		}
		return nil
	})
}

// -------------------- MsgExecuteContract --------------------

// MsgExecuteContract skips field 4; funds is field 5 in the v1beta1 schema.
type MsgExecuteContract struct {
	Sender   string       `json:"sender"`
	Contract string       `json:"contract"`
	Msg      []byte       `json:"msg"`
	Funds    []types.Coin `json:"funds,omitempty"`
}

func (MsgExecuteContract) TypeURL() string { return TypeURLMsgExecuteContract }

func (m MsgExecuteContract) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendString(b, 2, m.Contract)
	b = types.AppendBytes(b, 3, m.Msg)
	b = types.AppendCoins(b, 5, m.Funds)
	return b, nil
}

func (m *MsgExecuteContract) Unmarshal(data []byte) error {
	*m = MsgExecuteContract{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 2:
			return readString(num, typ, v, &m.Contract)
		case 3:
			return readBytes(num, typ, v, &m.Msg)
		case 5:
			return readCoin(num, typ, v, &m.Funds)
		}
		return nil
	})
}

// -------------------- MsgMigrateContract --------------------

type MsgMigrateContract struct {
	Sender     string `json:"sender"`
	Contract   string `json:"contract"`
	CodeID     uint64 `json:"code_id"`
	MigrateMsg []byte `json:"migrate_msg"`
}

func (MsgMigrateContract) TypeURL() string { return TypeURLMsgMigrateContract }

func (m MsgMigrateContract) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendString(b, 2, m.Contract)
	b = types.AppendUint64(b, 3, m.CodeID)
	b = types.AppendBytes(b, 4, m.MigrateMsg)
	return b, nil
}

func (m *MsgMigrateContract) Unmarshal(data []byte) error {
	*m = MsgMigrateContract{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, n uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 2:
			return readString(num, typ, v, &m.Contract)
		case 3:
			return readUint64(num, typ, n, &m.CodeID)
		case 4:
			return readBytes(num, typ, v, &m.MigrateMsg)
		}
		return nil
	})
}

// -------------------- MsgUpdateAdmin / MsgClearAdmin --------------------

type MsgUpdateAdmin struct {
	Sender   string `json:"sender"`
	NewAdmin string `json:"new_admin"`
	Contract string `json:"contract"`
}

func (MsgUpdateAdmin) TypeURL() string { return TypeURLMsgUpdateAdmin }

func (m MsgUpdateAdmin) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendString(b, 2, m.NewAdmin)
	b = types.AppendString(b, 3, m.Contract)
	return b, nil
}

func (m *MsgUpdateAdmin) Unmarshal(data []byte) error {
	*m = MsgUpdateAdmin{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 2:
			return readString(num, typ, v, &m.NewAdmin)
		case 3:
			return readString(num, typ, v, &m.Contract)
		}
		return nil
	})
}

// MsgClearAdmin keeps contract at field 3, as in the schema.
type MsgClearAdmin struct {
	Sender   string `json:"sender"`
	Contract string `json:"contract"`
}

func (MsgClearAdmin) TypeURL() string { return TypeURLMsgClearAdmin }

func (m MsgClearAdmin) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.Sender)
	b = types.AppendString(b, 3, m.Contract)
	return b, nil
}

func (m *MsgClearAdmin) Unmarshal(data []byte) error {
	*m = MsgClearAdmin{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.Sender)
		case 3:
			return readString(num, typ, v, &m.Contract)
		}
		return nil
	})
}
