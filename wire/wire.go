package wire

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/nimblesign/fairblind"
)

// bigIntsToBytes and bytesToBigInts convert between *big.Int slices and the
// byte-slice-of-byte-slices shape CBOR encodes without any custom codec.
func bigIntsToBytes(xs []*big.Int) [][]byte {
	out := make([][]byte, len(xs))
	for i, x := range xs {
		out[i] = x.Bytes()
	}
	return out
}

func bytesToBigInts(xs [][]byte) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = new(big.Int).SetBytes(x)
	}
	return out
}

type blindedDigestDTO struct {
	M [][]byte `cbor:"m"`
}

// MarshalBlindedDigest encodes a BlindedDigest as CBOR.
func MarshalBlindedDigest(d fairblind.BlindedDigest) ([]byte, error) {
	b, err := cbor.Marshal(blindedDigestDTO{M: bigIntsToBytes(d.M)})
	if err != nil {
		return nil, fmt.Errorf("wire: failed to marshal blinded digest: %w", err)
	}
	return b, nil
}

// UnmarshalBlindedDigest decodes CBOR produced by MarshalBlindedDigest.
func UnmarshalBlindedDigest(data []byte) (fairblind.BlindedDigest, error) {
	var dto blindedDigestDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return fairblind.BlindedDigest{}, fmt.Errorf("wire: failed to unmarshal blinded digest: %w", err)
	}
	return fairblind.BlindedDigest{M: bytesToBigInts(dto.M)}, nil
}

type subsetDTO struct {
	S []int `cbor:"s"`
	C []int `cbor:"c"`
}

// MarshalSubset encodes a Subset as CBOR.
func MarshalSubset(s fairblind.Subset) ([]byte, error) {
	b, err := cbor.Marshal(subsetDTO{S: s.S, C: s.C})
	if err != nil {
		return nil, fmt.Errorf("wire: failed to marshal subset: %w", err)
	}
	return b, nil
}

// UnmarshalSubset decodes CBOR produced by MarshalSubset.
func UnmarshalSubset(data []byte) (fairblind.Subset, error) {
	var dto subsetDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return fairblind.Subset{}, fmt.Errorf("wire: failed to unmarshal subset: %w", err)
	}
	return fairblind.Subset{S: dto.S, C: dto.C}, nil
}

type checkParameterDTO struct {
	U    [][]byte `cbor:"u"`
	R    [][]byte `cbor:"r"`
	Beta []byte   `cbor:"beta"`
}

// MarshalCheckParameter encodes a CheckParameter as CBOR.
func MarshalCheckParameter(cp fairblind.CheckParameter) ([]byte, error) {
	b, err := cbor.Marshal(checkParameterDTO{U: cp.U, R: bigIntsToBytes(cp.R), Beta: cp.Beta})
	if err != nil {
		return nil, fmt.Errorf("wire: failed to marshal check parameter: %w", err)
	}
	return b, nil
}

// UnmarshalCheckParameter decodes CBOR produced by MarshalCheckParameter.
func UnmarshalCheckParameter(data []byte) (fairblind.CheckParameter, error) {
	var dto checkParameterDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return fairblind.CheckParameter{}, fmt.Errorf("wire: failed to unmarshal check parameter: %w", err)
	}
	return fairblind.CheckParameter{U: dto.U, R: bytesToBigInts(dto.R), Beta: dto.Beta}, nil
}

type blindSignatureDTO struct {
	B []byte `cbor:"b"`
}

// MarshalBlindSignature encodes a BlindSignature as CBOR.
func MarshalBlindSignature(bs fairblind.BlindSignature) ([]byte, error) {
	b, err := cbor.Marshal(blindSignatureDTO{B: bs.B.Bytes()})
	if err != nil {
		return nil, fmt.Errorf("wire: failed to marshal blind signature: %w", err)
	}
	return b, nil
}

// UnmarshalBlindSignature decodes CBOR produced by MarshalBlindSignature.
func UnmarshalBlindSignature(data []byte) (fairblind.BlindSignature, error) {
	var dto blindSignatureDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return fairblind.BlindSignature{}, fmt.Errorf("wire: failed to unmarshal blind signature: %w", err)
	}
	return fairblind.BlindSignature{B: new(big.Int).SetBytes(dto.B)}, nil
}

type signatureDTO struct {
	S      []byte   `cbor:"s"`
	Alpha  []byte   `cbor:"alpha"`
	V      [][]byte `cbor:"v"`
	Subset subsetDTO `cbor:"subset"`
}

// MarshalSignature encodes a Signature as CBOR.
func MarshalSignature(sig fairblind.Signature) ([]byte, error) {
	b, err := cbor.Marshal(signatureDTO{
		S:      sig.S.Bytes(),
		Alpha:  sig.Alpha,
		V:      sig.V,
		Subset: subsetDTO{S: sig.Subset.S, C: sig.Subset.C},
	})
	if err != nil {
		return nil, fmt.Errorf("wire: failed to marshal signature: %w", err)
	}
	return b, nil
}

// UnmarshalSignature decodes CBOR produced by MarshalSignature.
func UnmarshalSignature(data []byte) (fairblind.Signature, error) {
	var dto signatureDTO
	if err := cbor.Unmarshal(data, &dto); err != nil {
		return fairblind.Signature{}, fmt.Errorf("wire: failed to unmarshal signature: %w", err)
	}
	return fairblind.Signature{
		S:     new(big.Int).SetBytes(dto.S),
		Alpha: dto.Alpha,
		V:     dto.V,
		Subset: fairblind.Subset{
			S: dto.Subset.S,
			C: dto.Subset.C,
		},
	}, nil
}
