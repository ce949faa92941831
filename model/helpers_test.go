package model

var (
	testKind = NewTable("testKind",
		Constant[uint16]{"KIND_NONE", 0},
		Constant[uint16]{"KIND_REL", 1},
		Constant[uint16]{"KIND_EXEC", 2},
		Constant[uint16]{"KIND_HIGH", 0xff00},
		Constant[uint16]{"KIND_HIGH_ALIAS", 0xff00},
	)

	testPerm = NewTable("testPerm",
		Constant[uint8]{"PERM_READ", 1 << 0},
		Constant[uint8]{"PERM_WRITE", 1 << 1},
		Constant[uint8]{"PERM_EXEC", 1 << 2},
		Constant[uint8]{"PERM_META", 0x30},
	)

	testFree  = NewTable[uint32]("testFree")
	testEmpty = NewTable[uint8]("testEmpty")
)
