package client

import (
	"encoding/binary"
	"fmt"

	"github.com/dan13ram/ada-bridge/models"
)

func hashTypeByte(hashType string) (byte, error) {
	switch hashType {
	case HashTypeData:
		return 0x00, nil
	case HashTypeType:
		return 0x01, nil
	case HashTypeData1:
		return 0x02, nil
	}
	return 0, fmt.Errorf("invalid hash type: %s", hashType)
}

func depTypeByte(depType string) byte {
	if depType == DepTypeDepGroup {
		return 0x01
	}
	return 0x00
}

func serializeUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func serializeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// SerializeBytes is a molecule fixvec of bytes.
func SerializeBytes(b []byte) []byte {
	return append(serializeUint32(uint32(len(b))), b...)
}

func serializeFixVec(items [][]byte) []byte {
	out := serializeUint32(uint32(len(items)))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// tables and dynvecs share the header layout: full size then one offset per item
func serializeDynVec(items [][]byte) []byte {
	headerSize := 4 + 4*len(items)
	fullSize := headerSize
	for _, item := range items {
		fullSize += len(item)
	}

	out := make([]byte, 0, fullSize)
	out = append(out, serializeUint32(uint32(fullSize))...)
	offset := headerSize
	for _, item := range items {
		out = append(out, serializeUint32(uint32(offset))...)
		offset += len(item)
	}
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

func serializeTable(fields [][]byte) []byte {
	return serializeDynVec(fields)
}

func serializeOption(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return SerializeBytes(b)
}

// SerializeScript panics on an unknown hash type, scripts are validated when built from config.
func SerializeScript(s Script) []byte {
	hashType, err := hashTypeByte(s.HashType)
	if err != nil {
		panic(err)
	}
	return serializeTable([][]byte{
		s.CodeHash.Bytes(),
		{hashType},
		SerializeBytes(s.Args),
	})
}

func SerializeOutPoint(o OutPoint) []byte {
	return append(o.TxHash.Bytes(), serializeUint32(uint32(o.Index))...)
}

func SerializeCellInput(i CellInput) []byte {
	return append(serializeUint64(uint64(i.Since)), SerializeOutPoint(i.PreviousOutput)...)
}

func SerializeCellDep(d CellDep) []byte {
	return append(SerializeOutPoint(d.OutPoint), depTypeByte(d.DepType))
}

func SerializeCellOutput(o CellOutput) []byte {
	typeScript := []byte{}
	if o.Type != nil {
		typeScript = SerializeScript(*o.Type)
	}
	return serializeTable([][]byte{
		serializeUint64(uint64(o.Capacity)),
		SerializeScript(o.Lock),
		typeScript,
	})
}

// SerializeRawTransaction serializes everything but the witnesses.
func SerializeRawTransaction(tx *Transaction) []byte {
	cellDeps := make([][]byte, 0, len(tx.CellDeps))
	for _, dep := range tx.CellDeps {
		cellDeps = append(cellDeps, SerializeCellDep(dep))
	}
	headerDeps := make([][]byte, 0, len(tx.HeaderDeps))
	for _, dep := range tx.HeaderDeps {
		headerDeps = append(headerDeps, dep.Bytes())
	}
	inputs := make([][]byte, 0, len(tx.Inputs))
	for _, input := range tx.Inputs {
		inputs = append(inputs, SerializeCellInput(input))
	}
	outputs := make([][]byte, 0, len(tx.Outputs))
	for _, output := range tx.Outputs {
		outputs = append(outputs, SerializeCellOutput(output))
	}
	outputsData := make([][]byte, 0, len(tx.OutputsData))
	for _, data := range tx.OutputsData {
		outputsData = append(outputsData, SerializeBytes(data))
	}

	return serializeTable([][]byte{
		serializeUint32(uint32(tx.Version)),
		serializeFixVec(cellDeps),
		serializeFixVec(headerDeps),
		serializeFixVec(inputs),
		serializeDynVec(outputs),
		serializeDynVec(outputsData),
	})
}

func SerializeWitnessArgs(w WitnessArgs) []byte {
	return serializeTable([][]byte{
		serializeOption(w.Lock),
		serializeOption(w.InputType),
		serializeOption(w.OutputType),
	})
}

func SerializeRecipientCellData(d RecipientCellData) []byte {
	return serializeTable([][]byte{
		SerializeBytes([]byte(d.RecipientAddress)),
		{byte(d.Chain)},
		SerializeBytes([]byte(d.Asset)),
		d.Amount[:],
		d.OwnerLockHash[:],
	})
}

// DeserializeRecipientCellData reads back the recipient cell data table.
func DeserializeRecipientCellData(data []byte) (*RecipientCellData, error) {
	fields, err := tableFields(data, 5)
	if err != nil {
		return nil, err
	}
	if len(fields[1]) != 1 || len(fields[3]) != 16 || len(fields[4]) != 32 {
		return nil, fmt.Errorf("invalid recipient cell data")
	}
	address, err := deserializeBytes(fields[0])
	if err != nil {
		return nil, err
	}
	asset, err := deserializeBytes(fields[2])
	if err != nil {
		return nil, err
	}

	d := &RecipientCellData{
		RecipientAddress: string(address),
		Asset:            string(asset),
	}
	d.Chain = models.ChainType(fields[1][0])
	copy(d.Amount[:], fields[3])
	copy(d.OwnerLockHash[:], fields[4])
	return d, nil
}

func deserializeBytes(b []byte) ([]byte, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("invalid bytes length")
	}
	size := binary.LittleEndian.Uint32(b[:4])
	if int(size) != len(b)-4 {
		return nil, fmt.Errorf("invalid bytes length")
	}
	return b[4:], nil
}

func tableFields(data []byte, count int) ([][]byte, error) {
	headerSize := 4 + 4*count
	if len(data) < headerSize {
		return nil, fmt.Errorf("invalid table header")
	}
	fullSize := int(binary.LittleEndian.Uint32(data[:4]))
	if fullSize != len(data) {
		return nil, fmt.Errorf("invalid table size: %d", fullSize)
	}

	offsets := make([]int, count+1)
	for i := 0; i < count; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(data[4+4*i:]))
	}
	offsets[count] = fullSize
	if offsets[0] != headerSize {
		return nil, fmt.Errorf("invalid table field count")
	}

	fields := make([][]byte, count)
	for i := 0; i < count; i++ {
		if offsets[i] > offsets[i+1] || offsets[i+1] > fullSize {
			return nil, fmt.Errorf("invalid table offset")
		}
		fields[i] = data[offsets[i]:offsets[i+1]]
	}
	return fields, nil
}
