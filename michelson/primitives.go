package michelson

import "fmt"

// Primitive is a Michelson v1 symbol: a keyword (K_), data
// constructor (D_), instruction (I_) or type (T_). On the wire each
// primitive is exactly one byte, its position in the canonical
// enumeration below.
type Primitive byte

const (
	K_parameter Primitive = iota
	K_storage
	K_code
	D_False
	D_Elt
	D_Left
	D_None
	D_Pair
	D_Right
	D_Some
	D_True
	D_Unit
	I_PACK
	I_UNPACK
	I_BLAKE2B
	I_SHA256
	I_SHA512
	I_ABS
	I_ADD
	I_AMOUNT
	I_AND
	I_BALANCE
	I_CAR
	I_CDR
	I_CHECK_SIGNATURE
	I_COMPARE
	I_CONCAT
	I_CONS
	I_CREATE_ACCOUNT
	I_CREATE_CONTRACT
	I_IMPLICIT_ACCOUNT
	I_DIP
	I_DROP
	I_DUP
	I_EDIV
	I_EMPTY_MAP
	I_EMPTY_SET
	I_EQ
	I_EXEC
	I_FAILWITH
	I_GE
	I_GET
	I_GT
	I_HASH_KEY
	I_IF
	I_IF_CONS
	I_IF_LEFT
	I_IF_NONE
	I_INT
	I_LAMBDA
	I_LE
	I_LEFT
	I_LOOP
	I_LSL
	I_LSR
	I_LT
	I_MAP
	I_MEM
	I_MUL
	I_NEG
	I_NEQ
	I_NIL
	I_NONE
	I_NOT
	I_NOW
	I_OR
	I_PAIR
	I_PUSH
	I_RIGHT
	I_SIZE
	I_SOME
	I_SOURCE
	I_SENDER
	I_SELF
	I_STEPS_TO_QUOTA
	I_SUB
	I_SWAP
	I_TRANSFER_TOKENS
	I_SET_DELEGATE
	I_UNIT
	I_UPDATE
	I_XOR
	I_ITER
	I_LOOP_LEFT
	I_ADDRESS
	I_CONTRACT
	I_ISNAT
	I_CAST
	I_RENAME
	T_bool
	T_contract
	T_int
	T_key
	T_key_hash
	T_lambda
	T_list
	T_map
	T_big_map
	T_nat
	T_option
	T_or
	T_pair
	T_set
	T_signature
	T_string
	T_bytes
	T_mutez
	T_timestamp
	T_unit
	T_operation
	T_address
)

// primNames holds the Michelson source names, indexed by wire code.
// Keywords and types are lowercase, data constructors capitalized,
// instructions uppercase, so every name is unambiguous.
var primNames = [...]string{
	K_parameter:        "parameter",
	K_storage:          "storage",
	K_code:             "code",
	D_False:            "False",
	D_Elt:              "Elt",
	D_Left:             "Left",
	D_None:             "None",
	D_Pair:             "Pair",
	D_Right:            "Right",
	D_Some:             "Some",
	D_True:             "True",
	D_Unit:             "Unit",
	I_PACK:             "PACK",
	I_UNPACK:           "UNPACK",
	I_BLAKE2B:          "BLAKE2B",
	I_SHA256:           "SHA256",
	I_SHA512:           "SHA512",
	I_ABS:              "ABS",
	I_ADD:              "ADD",
	I_AMOUNT:           "AMOUNT",
	I_AND:              "AND",
	I_BALANCE:          "BALANCE",
	I_CAR:              "CAR",
	I_CDR:              "CDR",
	I_CHECK_SIGNATURE:  "CHECK_SIGNATURE",
	I_COMPARE:          "COMPARE",
	I_CONCAT:           "CONCAT",
	I_CONS:             "CONS",
	I_CREATE_ACCOUNT:   "CREATE_ACCOUNT",
	I_CREATE_CONTRACT:  "CREATE_CONTRACT",
	I_IMPLICIT_ACCOUNT: "IMPLICIT_ACCOUNT",
	I_DIP:              "DIP",
	I_DROP:             "DROP",
	I_DUP:              "DUP",
	I_EDIV:             "EDIV",
	I_EMPTY_MAP:        "EMPTY_MAP",
	I_EMPTY_SET:        "EMPTY_SET",
	I_EQ:               "EQ",
	I_EXEC:             "EXEC",
	I_FAILWITH:         "FAILWITH",
	I_GE:               "GE",
	I_GET:              "GET",
	I_GT:               "GT",
	I_HASH_KEY:         "HASH_KEY",
	I_IF:               "IF",
	I_IF_CONS:          "IF_CONS",
	I_IF_LEFT:          "IF_LEFT",
	I_IF_NONE:          "IF_NONE",
	I_INT:              "INT",
	I_LAMBDA:           "LAMBDA",
	I_LE:               "LE",
	I_LEFT:             "LEFT",
	I_LOOP:             "LOOP",
	I_LSL:              "LSL",
	I_LSR:              "LSR",
	I_LT:               "LT",
	I_MAP:              "MAP",
	I_MEM:              "MEM",
	I_MUL:              "MUL",
	I_NEG:              "NEG",
	I_NEQ:              "NEQ",
	I_NIL:              "NIL",
	I_NONE:             "NONE",
	I_NOT:              "NOT",
	I_NOW:              "NOW",
	I_OR:               "OR",
	I_PAIR:             "PAIR",
	I_PUSH:             "PUSH",
	I_RIGHT:            "RIGHT",
	I_SIZE:             "SIZE",
	I_SOME:             "SOME",
	I_SOURCE:           "SOURCE",
	I_SENDER:           "SENDER",
	I_SELF:             "SELF",
	I_STEPS_TO_QUOTA:   "STEPS_TO_QUOTA",
	I_SUB:              "SUB",
	I_SWAP:             "SWAP",
	I_TRANSFER_TOKENS:  "TRANSFER_TOKENS",
	I_SET_DELEGATE:     "SET_DELEGATE",
	I_UNIT:             "UNIT",
	I_UPDATE:           "UPDATE",
	I_XOR:              "XOR",
	I_ITER:             "ITER",
	I_LOOP_LEFT:        "LOOP_LEFT",
	I_ADDRESS:          "ADDRESS",
	I_CONTRACT:         "CONTRACT",
	I_ISNAT:            "ISNAT",
	I_CAST:             "CAST",
	I_RENAME:           "RENAME",
	T_bool:             "bool",
	T_contract:         "contract",
	T_int:              "int",
	T_key:              "key",
	T_key_hash:         "key_hash",
	T_lambda:           "lambda",
	T_list:             "list",
	T_map:              "map",
	T_big_map:          "big_map",
	T_nat:              "nat",
	T_option:           "option",
	T_or:               "or",
	T_pair:             "pair",
	T_set:              "set",
	T_signature:        "signature",
	T_string:           "string",
	T_bytes:            "bytes",
	T_mutez:            "mutez",
	T_timestamp:        "timestamp",
	T_unit:             "unit",
	T_operation:        "operation",
	T_address:          "address",
}

var primByName = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primNames))
	for code, name := range primNames {
		m[name] = Primitive(code)
	}
	return m
}()

// Valid reports whether p is an assigned wire code.
func (p Primitive) Valid() bool {
	return int(p) < len(primNames)
}

func (p Primitive) String() string {
	if !p.Valid() {
		return fmt.Sprintf("<invalid primitive 0x%02x>", byte(p))
	}
	return primNames[p]
}

func (p Primitive) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid primitive code 0x%02x", byte(p))
	}
	return []byte(primNames[p]), nil
}

func (p *Primitive) UnmarshalText(d []byte) error {
	pp, err := ParsePrimitive(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// ParsePrimitive resolves a Michelson source name to its primitive.
func ParsePrimitive(name string) (Primitive, error) {
	p, ok := primByName[name]
	if !ok {
		return 0, fmt.Errorf("unrecognized primitive %q", name)
	}
	return p, nil
}

// Primitives returns all assigned primitives in wire-code order.
func Primitives() []Primitive {
	res := make([]Primitive, len(primNames))
	for i := range res {
		res[i] = Primitive(i)
	}
	return res
}
