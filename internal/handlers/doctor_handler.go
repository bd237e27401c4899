package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/httpresp"
	ucDoctor "github.com/Harika-001-tech/prenatal-app/internal/usecase/doctor"
)

type DoctorHandler struct {
	register *ucDoctor.RegisterDoctor
	get      *ucDoctor.GetDoctor
}

func NewDoctorHandler(register *ucDoctor.RegisterDoctor, get *ucDoctor.GetDoctor) *DoctorHandler {
	return &DoctorHandler{register: register, get: get}
}

type CreateDoctorRequest struct {
	Name              string `json:"name" binding:"required"`
	Specialization    string `json:"specialization"`
	WorkingHoursStart string `json:"working_hours_start" binding:"required"`
	WorkingHoursEnd   string `json:"working_hours_end" binding:"required"`
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
		return
	}

	d, err := h.register.Execute(c.Request.Context(), ucDoctor.RegisterDoctorInput{
		Name:              req.Name,
		Specialization:    req.Specialization,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, d)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, d)
}
