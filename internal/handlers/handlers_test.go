package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/config"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/handlers"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/routes"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/session"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// portalDePrueba levanta el portal completo contra un backend falso.
func portalDePrueba(t *testing.T, backend http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtKey = []byte("clave-de-prueba")
	config.SessionTTL = time.Hour
	config.RDB = nil

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	handlers.Init(client.New(srv.URL))
	return routes.SetupRouter()
}

func cookieDeSesion(t *testing.T, usuario string, rol models.Role) *http.Cookie {
	t.Helper()
	token, err := session.Issue(usuario, rol)
	if err != nil {
		t.Fatalf("no se pudo emitir la sesión de prueba: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("respuesta ilegible: %v\n%s", err, w.Body.String())
	}
	return body
}

func severidad(t *testing.T, body map[string]any) string {
	t.Helper()
	n, ok := body["notification"].(map[string]any)
	if !ok {
		t.Fatalf("la respuesta no trae notification: %v", body)
	}
	s, _ := n["severity"].(string)
	return s
}

func formulario(valores url.Values) (io.Reader, string) {
	return strings.NewReader(valores.Encode()), "application/x-www-form-urlencoded"
}

func TestLoginExitosoAbreSesion(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/estudiante/loginestudiante" {
			t.Errorf("path = %s", r.URL.Path)
		}
	}))

	valores := url.Values{}
	valores.Set("usuario", "maria")
	valores.Set("contrasenia", "secreta1")
	valores.Set("nivelDePermiso", "Estudiante")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}

	respuesta := decodificar(t, w)
	if respuesta["outcome"] != "temario?faces-redirect=true" {
		t.Errorf("outcome = %v", respuesta["outcome"])
	}
	if respuesta["rol"] != "Estudiante" {
		t.Errorf("rol = %v", respuesta["rol"])
	}

	var conToken bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			conToken = true
		}
	}
	if !conToken {
		t.Error("el login exitoso no dejó la cookie de sesión")
	}
}

func TestLoginFallidoNoAbreSesion(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	valores := url.Values{}
	valores.Set("usuario", "maria")
	valores.Set("contrasenia", "equivocada")
	valores.Set("nivelDePermiso", "Estudiante")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("un login fallido no debe tocar la sesión")
	}
	if s := severidad(t, decodificar(t, w)); s != "warn" {
		t.Errorf("severidad = %q", s)
	}
}

func TestLoginConBackendCaidoEsCritico(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JwtKey = []byte("clave-de-prueba")
	config.SessionTTL = time.Hour
	config.RDB = nil

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // el backend no está

	handlers.Init(client.New(srv.URL))
	router := routes.SetupRouter()

	valores := url.Values{}
	valores.Set("usuario", "maria")
	valores.Set("contrasenia", "secreta1")
	valores.Set("nivelDePermiso", "Estudiante")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("un backend caído no debe tocar la sesión")
	}
	if s := severidad(t, decodificar(t, w)); s != "error" {
		t.Errorf("severidad = %q, un fallo de transporte es crítico", s)
	}
}

func TestLoginConCamposEnBlancoNoTocaLaRed(t *testing.T) {
	var llamadas atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))

	valores := url.Values{}
	valores.Set("usuario", "   ")
	valores.Set("contrasenia", "secreta1")
	valores.Set("nivelDePermiso", "Estudiante")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if n := llamadas.Load(); n != 0 {
		t.Errorf("hubo %d llamadas al backend", n)
	}
}

func TestRegistroConContrasenasDistintasNoTocaLaRed(t *testing.T) {
	var llamadas atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))

	valores := url.Values{}
	valores.Set("usuario", "ana")
	valores.Set("contrasenia", "secreta1")
	valores.Set("confirmarContrasena", "secreta2")
	valores.Set("nivelDePermiso", "Profesor")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if n := llamadas.Load(); n != 0 {
		t.Errorf("hubo %d llamadas al backend", n)
	}
	if s := severidad(t, decodificar(t, w)); s != "warn" {
		t.Errorf("severidad = %q", s)
	}
}

func TestRegistroExitosoNoAbreSesion(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profesor/createprofesorjson" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	valores := url.Values{}
	valores.Set("usuario", "ana")
	valores.Set("contrasenia", "secreta1")
	valores.Set("confirmarContrasena", "secreta1")
	valores.Set("nivelDePermiso", "Profesor")
	body, ct := formulario(valores)

	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("el registro nunca abre sesión")
	}
}

func TestCrearProblemaFlujoCompleto(t *testing.T) {
	var creados atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/problema/createproblemajson":
			creados.Add(1)
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"message":"Problema creado exitosamente"}`)
		case "/problema/getall":
			if creados.Load() > 0 {
				io.WriteString(w, `[{"id":1,"titulo":"A","tema":"Graphs","juez":"Codeforces","dificultad":3}]`)
			} else {
				io.WriteString(w, `[]`)
			}
		default:
			t.Errorf("petición inesperada: %s %s", r.Method, r.URL.Path)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/problemas",
		strings.NewReader(`{"titulo":"A","tema":"Graphs","juez":"Codeforces","dificultad":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}

	respuesta := decodificar(t, w)
	if s := severidad(t, respuesta); s != "info" {
		t.Errorf("severidad = %q", s)
	}

	data, ok := respuesta["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v, se esperaba un problema", respuesta["data"])
	}
	problema := data[0].(map[string]any)
	if problema["titulo"] != "A" {
		t.Errorf("titulo = %v", problema["titulo"])
	}
}

func TestCrearProblemaRecortaLaDificultad(t *testing.T) {
	var recibida atomic.Int64
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/problema/createproblemajson":
			var p models.Problema
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				t.Errorf("cuerpo ilegible: %v", err)
			}
			recibida.Store(int64(p.Dificultad))
			w.WriteHeader(http.StatusCreated)
		case "/problema/getall":
			io.WriteString(w, `[]`)
		}
	}))

	casos := []struct{ enviada, esperada int }{
		{7, 5},
		{0, 1},
	}
	for _, c := range casos {
		body := fmt.Sprintf(`{"titulo":"A","tema":"DP","juez":"AtCoder","dificultad":%d}`, c.enviada)
		req := httptest.NewRequest(http.MethodPost, "/api/problemas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("dificultad %d: status = %d\n%s", c.enviada, w.Code, w.Body.String())
		}
		if got := recibida.Load(); got != int64(c.esperada) {
			t.Errorf("dificultad %d: el backend recibió %d, se esperaba %d", c.enviada, got, c.esperada)
		}
	}
}

func TestCrearProblemaSinTituloNoLlamaAlBackend(t *testing.T) {
	var llamadas atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/problemas",
		strings.NewReader(`{"titulo":"  ","tema":"Graphs","juez":"Codeforces","dificultad":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if n := llamadas.Load(); n != 0 {
		t.Errorf("hubo %d llamadas al backend", n)
	}
	if s := severidad(t, decodificar(t, w)); s != "warn" {
		t.Errorf("severidad = %q", s)
	}
}

func TestCrearProblemaComoEstudianteProhibido(t *testing.T) {
	var llamadas atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/problemas",
		strings.NewReader(`{"titulo":"A","tema":"DP","juez":"AtCoder","dificultad":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookieDeSesion(t, "maria", models.RolEstudiante))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
	if n := llamadas.Load(); n != 0 {
		t.Errorf("hubo %d llamadas al backend", n)
	}
}

func cuerpoMultiparte(t *testing.T, campos map[string]string, archivos map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for campo, valor := range campos {
		if err := w.WriteField(campo, valor); err != nil {
			t.Fatalf("armando el campo %q: %v", campo, err)
		}
	}
	for nombre, datos := range archivos {
		fw, err := w.CreateFormFile(nombre, nombre+".bin")
		if err != nil {
			t.Fatalf("armando el archivo %q: %v", nombre, err)
		}
		if _, err := fw.Write(datos); err != nil {
			t.Fatalf("escribiendo el archivo %q: %v", nombre, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cerrando el formulario: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestCrearLibroCodificaLosArchivos(t *testing.T) {
	portada := []byte("bytes de la portada")
	pdf := []byte("bytes del pdf")

	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/libro/createlibrojson":
			var libro models.Libro
			if err := json.NewDecoder(r.Body).Decode(&libro); err != nil {
				t.Errorf("cuerpo ilegible: %v", err)
			}
			if libro.Titulo != "Competitive Programmer's Handbook" {
				t.Errorf("titulo = %q", libro.Titulo)
			}
			if libro.ImagenBase64 != base64.StdEncoding.EncodeToString(portada) {
				t.Errorf("la portada no llegó en base64: %q", libro.ImagenBase64)
			}
			if libro.PdfBase64 != base64.StdEncoding.EncodeToString(pdf) {
				t.Errorf("el PDF no llegó en base64: %q", libro.PdfBase64)
			}
			w.WriteHeader(http.StatusCreated)
		case "/libro/getall":
			io.WriteString(w, `[{"id":1,"titulo":"Competitive Programmer's Handbook","author":"Laaksonen"}]`)
		default:
			t.Errorf("petición inesperada: %s %s", r.Method, r.URL.Path)
		}
	}))

	body, ct := cuerpoMultiparte(t,
		map[string]string{
			"titulo": "Competitive Programmer's Handbook",
			"author": "Laaksonen",
		},
		map[string][]byte{"portada": portada, "pdf": pdf})

	req := httptest.NewRequest(http.MethodPost, "/api/libros", body)
	req.Header.Set("Content-Type", ct)
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	respuesta := decodificar(t, w)
	if s := severidad(t, respuesta); s != "info" {
		t.Errorf("severidad = %q", s)
	}
	if data, ok := respuesta["data"].([]any); !ok || len(data) != 1 {
		t.Errorf("data = %v, se esperaba el libro recargado", respuesta["data"])
	}
}

func TestCrearLibroConPortadaGiganteNoTocaLaRed(t *testing.T) {
	var llamadas atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llamadas.Add(1)
	}))

	body, ct := cuerpoMultiparte(t,
		map[string]string{"titulo": "Gigante", "author": "Nadie"},
		map[string][]byte{"portada": bytes.Repeat([]byte{0x41}, 5<<20+1)})

	req := httptest.NewRequest(http.MethodPost, "/api/libros", body)
	req.Header.Set("Content-Type", ct)
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if n := llamadas.Load(); n != 0 {
		t.Errorf("hubo %d llamadas al backend", n)
	}

	respuesta := decodificar(t, w)
	if s := severidad(t, respuesta); s != "warn" {
		t.Errorf("severidad = %q", s)
	}
	n := respuesta["notification"].(map[string]any)
	if detalle, _ := n["detail"].(string); !strings.Contains(detalle, "5.0 MiB") {
		t.Errorf("el detalle no menciona el límite legible: %q", detalle)
	}
}

func TestEliminarProblemaInexistente(t *testing.T) {
	var borrados atomic.Int32
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/problema/getall":
			io.WriteString(w, `[]`)
		case r.Method == http.MethodDelete:
			borrados.Add(1)
		}
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/problemas/99", nil)
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if n := borrados.Load(); n != 0 {
		t.Errorf("hubo %d DELETE al backend", n)
	}
	if s := severidad(t, decodificar(t, w)); s != "warn" {
		t.Errorf("severidad = %q", s)
	}
}

func TestAPISinSesion(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debía llegar ninguna petición al backend")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/problemas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAPISinSesionDesdeNavegadorRedirige(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/temarios", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q", got)
	}
}

func TestPerfilConAvatarGenerado(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profesor/obtenerImagen" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.AddCookie(cookieDeSesion(t, "profe", models.RolProfesor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}

	respuesta := decodificar(t, w)
	if respuesta["color"] != "#007bff" {
		t.Errorf("color = %v", respuesta["color"])
	}
	if respuesta["icono"] != "pi pi-user-edit" {
		t.Errorf("icono = %v", respuesta["icono"])
	}
	imagen, _ := respuesta["imagen"].(string)
	if !strings.HasPrefix(imagen, "data:image/svg+xml;base64,") {
		t.Errorf("sin imagen en el backend se esperaba el avatar generado, llegó %q", imagen)
	}
}

func TestLogoutBorraLaCookie(t *testing.T) {
	router := portalDePrueba(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookieDeSesion(t, "maria", models.RolEstudiante))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	respuesta := decodificar(t, w)
	if respuesta["outcome"] != "index?faces-redirect=true" {
		t.Errorf("outcome = %v", respuesta["outcome"])
	}

	var borrada bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			borrada = true
		}
	}
	if !borrada {
		t.Error("el logout no borró la cookie de sesión")
	}
}
