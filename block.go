package mcworld

// BlockId is a compact, process-wide identifier for a block name, assigned
// by a NameTable. Ids are never zero: id 0 is reserved so that a BlockId
// field may use its zero value to mean "absent" at no extra cost. Id 1
// always denotes minecraft:air.
type BlockId uint32

// AirID is the BlockId minecraft:air is interned to; every NameTable
// reserves it as its very first entry.
const AirID BlockId = 1

// BlockInfo is a single voxel layer's resolved state: the interned id of
// its block name, and its auxiliary state value.
type BlockInfo struct {
	ID  BlockId
	Val uint16
}

// AirInfo is the BlockInfo every implicit or newly created air cell holds.
var AirInfo = BlockInfo{ID: AirID}

// BlockData is the two stacked layers a voxel always carries in memory: a
// primary layer and an overlay layer (e.g. waterlogging). A subchunk
// encoding only one on-disk layer has its second layer materialised as
// AirInfo on load.
type BlockData struct {
	Layer1, Layer2 BlockInfo
}
