// Package numbering genera los números de documento del sistema:
// despachos (DISP-YYYYMMDD-XXXX) y rotaciones (<despacho>-R001).
//
// El sufijo aleatorio del número de despacho puede colisionar; el número no se
// asume único por construcción. El caso de uso reintenta con un número nuevo
// cuando la inserción viola la restricción de unicidad.
package numbering

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

// alfabeto del sufijo: mayúsculas y dígitos, legible en bonos impresos.
const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	dispatchPrefix = "DISP"
	suffixLen      = 4
)

var dispatchNumberRe = regexp.MustCompile(`^DISP-\d{8}-[A-Z0-9]{4}$`)

// DispatchNumber genera un número de despacho para la fecha dada:
// DISP-20240115-7KQ2.
func DispatchNumber(t time.Time) string {
	return fmt.Sprintf("%s-%s-%s", dispatchPrefix, t.Format("20060102"), randomSuffix())
}

// RotationNumber deriva el número de rotación del número de despacho y el
// índice de secuencia por despacho (1 → -R001).
func RotationNumber(dispatchNumber string, seq int) string {
	return fmt.Sprintf("%s-R%03d", dispatchNumber, seq)
}

// IsDispatchNumber valida el formato de un número de despacho.
func IsDispatchNumber(s string) bool {
	return dispatchNumberRe.MatchString(s)
}

func randomSuffix() string {
	b := make([]byte, suffixLen)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand sobre el SO no falla en la práctica; si falla no hay
		// fuente de aleatoriedad utilizable y continuar sería generar
		// números predecibles.
		panic(fmt.Sprintf("numbering: fuente aleatoria no disponible: %v", err))
	}
	for i := range b {
		b[i] = suffixCharset[int(b[i])%len(suffixCharset)]
	}
	return string(b)
}
